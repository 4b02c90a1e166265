package apuracao

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Posições fixas das páginas do volby.cz. Se o site mudar de layout, só este arquivo muda
const (
	classeLinhaOculta = "hidden_td"

	// ps311: página de um município
	indiceTabelaResumo         = 0
	indiceLinhaResumo          = 2
	celulaEleitoresRegistrados = 3
	celulaVotosTotais          = 6
	celulaVotosValidos         = 7
	celulaPartido              = 1
	celulaVotosPartido         = 2

	// ps32: listagem de municípios de um distrito
	celulaCodigo    = 0
	celulaMunicipio = 1

	// ps3: índice nacional de distritos
	celulaNomeDistrito = 1
	celulaLinkDistrito = 3
)

const nomeDistritoExterior = "Zahraničí"

// EsquemaPaginaMunicipio dá nome às células da página de um município
type EsquemaPaginaMunicipio struct{}

func (EsquemaPaginaMunicipio) MinimoCelulasResumo() int {
	return celulaVotosValidos + 1
}

func (EsquemaPaginaMunicipio) MinimoCelulasPartido() int {
	return celulaVotosPartido + 1
}

func (EsquemaPaginaMunicipio) EleitoresRegistrados(resumo []string) string {
	return resumo[celulaEleitoresRegistrados]
}

func (EsquemaPaginaMunicipio) VotosTotais(resumo []string) string {
	return resumo[celulaVotosTotais]
}

func (EsquemaPaginaMunicipio) VotosValidos(resumo []string) string {
	return resumo[celulaVotosValidos]
}

func (EsquemaPaginaMunicipio) Partido(celulas []string) string {
	return celulas[celulaPartido]
}

func (EsquemaPaginaMunicipio) VotosPartido(celulas []string) string {
	return celulas[celulaVotosPartido]
}

type EsquemaPaginaDistrito struct{}

func (EsquemaPaginaDistrito) MinimoCelulas() int {
	return celulaMunicipio + 1
}

func (EsquemaPaginaDistrito) Codigo(celulas []string) string {
	return celulas[celulaCodigo]
}

func (EsquemaPaginaDistrito) Municipio(celulas []string) string {
	return celulas[celulaMunicipio]
}

type EsquemaPaginaIndice struct{}

func (EsquemaPaginaIndice) MinimoCelulas() int {
	return celulaLinkDistrito + 1
}

func (EsquemaPaginaIndice) Nome(celulas []string) string {
	return celulas[celulaNomeDistrito]
}

// linhaDeDadosVisivel descarta cabeçalhos e as linhas marcadas como ocultas pelo site
func linhaDeDadosVisivel(linha *goquery.Selection) bool {
	return linha.Find("th").Length() == 0 && linha.Find("."+classeLinhaOculta).Length() == 0
}

func linhasVisiveis(sel *goquery.Selection) *goquery.Selection {
	return sel.Find("tr").FilterFunction(func(_ int, linha *goquery.Selection) bool {
		return linhaDeDadosVisivel(linha)
	})
}

func textosCelulas(linha *goquery.Selection) []string {
	return linha.Find("td").Map(func(_ int, celula *goquery.Selection) string {
		return limparTexto(celula.Text())
	})
}

// limparTexto remove os espaços rígidos que o site usa como separador de milhar
func limparTexto(texto string) string {
	return strings.TrimSpace(strings.ReplaceAll(texto, "\u00a0", ""))
}

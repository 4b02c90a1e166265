package apuracao

import (
	"volby-scrapper/modelos/dados"

	"github.com/PuerkitoBio/goquery"
)

// ExtrairRegistroVotos lê a página de um município. A primeira tabela traz o resumo do
// comparecimento e as demais os votos por partido
func ExtrairRegistroVotos(doc *goquery.Document) (dados.RegistroVotos, error) {
	esquema := EsquemaPaginaMunicipio{}

	tabelas := doc.Find("table")
	if tabelas.Length() <= indiceTabelaResumo {
		return dados.RegistroVotos{}, erroEstrutura("município", "nenhuma tabela encontrada")
	}

	linhasResumo := tabelas.Eq(indiceTabelaResumo).Find("tr")
	if linhasResumo.Length() <= indiceLinhaResumo {
		return dados.RegistroVotos{}, erroEstrutura("município",
			"a tabela de resumo tem %d linhas, esperado ao menos %d", linhasResumo.Length(), indiceLinhaResumo+1)
	}

	resumo := textosCelulas(linhasResumo.Eq(indiceLinhaResumo))
	if len(resumo) < esquema.MinimoCelulasResumo() {
		return dados.RegistroVotos{}, erroEstrutura("município",
			"a linha de resumo tem %d células, esperado ao menos %d", len(resumo), esquema.MinimoCelulasResumo())
	}

	registro := dados.RegistroVotos{
		EleitoresRegistrados: esquema.EleitoresRegistrados(resumo),
		VotosTotais:          esquema.VotosTotais(resumo),
		VotosValidos:         esquema.VotosValidos(resumo),
		VotosPorPartido:      make([]dados.VotoPartido, 0),
	}

	vistos := make(map[string]bool)
	var erro error
	tabelas.Slice(indiceTabelaResumo+1, goquery.ToEnd).EachWithBreak(func(t int, tabela *goquery.Selection) bool {
		linhasVisiveis(tabela).EachWithBreak(func(i int, linha *goquery.Selection) bool {
			celulas := textosCelulas(linha)
			if len(celulas) < esquema.MinimoCelulasPartido() {
				erro = erroEstrutura("município", "a linha %d da tabela de partidos %d tem %d células, esperado ao menos %d",
					i, t+1, len(celulas), esquema.MinimoCelulasPartido())
				return false
			}

			partido := esquema.Partido(celulas)
			if vistos[partido] {
				erro = erroEstrutura("município", "o partido %q aparece mais de uma vez", partido)
				return false
			}
			vistos[partido] = true

			registro.VotosPorPartido = append(registro.VotosPorPartido, dados.VotoPartido{
				Partido: partido,
				Votos:   esquema.VotosPartido(celulas),
			})
			return true
		})
		return erro == nil
	})

	if erro != nil {
		return dados.RegistroVotos{}, erro
	}

	return registro, nil
}

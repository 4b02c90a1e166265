package apuracao

import (
	"net/url"
	"volby-scrapper/modelos/configuracao"
	"volby-scrapper/modelos/dados"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

// ExtrairEntradasDistrito lê a listagem de municípios de um distrito na ordem do documento.
// Uma linha visível sem as células esperadas ou sem link interrompe a extração
func ExtrairEntradasDistrito(doc *goquery.Document, base *url.URL) ([]dados.EntradaDistrito, error) {
	esquema := EsquemaPaginaDistrito{}
	entradas := make([]dados.EntradaDistrito, 0)

	var erro error
	linhasVisiveis(doc.Selection).EachWithBreak(func(i int, linha *goquery.Selection) bool {
		celulas := textosCelulas(linha)
		if len(celulas) < esquema.MinimoCelulas() {
			erro = erroEstrutura("distrito", "a linha %d tem %d células, esperado ao menos %d", i, len(celulas), esquema.MinimoCelulas())
			return false
		}

		link, err := resolverLink(linha, base)
		if err != nil {
			erro = erroEstrutura("distrito", "a linha %d (%s): %v", i, esquema.Municipio(celulas), err)
			return false
		}

		entradas = append(entradas, dados.EntradaDistrito{
			Codigo:    esquema.Codigo(celulas),
			Municipio: esquema.Municipio(celulas),
			Link:      link,
		})
		return true
	})

	if erro != nil {
		return nil, erro
	}

	return entradas, nil
}

// ExtrairDistritos lê o índice nacional. O distrito do exterior é descartado por
// não ter municípios
func ExtrairDistritos(doc *goquery.Document, base *url.URL) ([]configuracao.Distrito, error) {
	esquema := EsquemaPaginaIndice{}
	distritos := make([]configuracao.Distrito, 0)

	var erro error
	linhasVisiveis(doc.Selection).EachWithBreak(func(i int, linha *goquery.Selection) bool {
		celulas := linha.Find("td")
		if celulas.Length() < esquema.MinimoCelulas() {
			erro = erroEstrutura("índice", "a linha %d tem %d células, esperado ao menos %d", i, celulas.Length(), esquema.MinimoCelulas())
			return false
		}

		nome := esquema.Nome(textosCelulas(linha))
		if nome == nomeDistritoExterior {
			return true
		}

		link, err := resolverLink(celulas.Eq(celulaLinkDistrito), base)
		if err != nil {
			erro = erroEstrutura("índice", "distrito %s: %v", nome, err)
			return false
		}

		distritos = append(distritos, configuracao.Distrito{Nome: nome, Link: link})
		return true
	})

	if erro != nil {
		return nil, erro
	}

	return distritos, nil
}

func resolverLink(sel *goquery.Selection, base *url.URL) (string, error) {
	href, existe := sel.Find("a[href]").First().Attr("href")
	if !existe {
		return "", errors.New("link não encontrado")
	}

	relativo, err := url.Parse(href)
	if err != nil {
		return "", errors.Wrapf(err, "link inválido %q", href)
	}

	return base.ResolveReference(relativo).String(), nil
}

package apuracao

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"volby-scrapper/modelos/dados"

	"github.com/PuerkitoBio/goquery"
	logger "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func logSilencioso() *logger.Entry {
	l := logger.New()
	l.SetOutput(io.Discard)
	return logger.NewEntry(l)
}

func lerFixture(t testing.TB, nome string) []byte {
	t.Helper()
	conteudo, err := os.ReadFile(filepath.Join("testdata", nome))
	require.NoError(t, err)
	return conteudo
}

func documento(t testing.TB, conteudo []byte) *goquery.Document {
	t.Helper()
	doc, err := ParsearDocumento(conteudo)
	require.NoError(t, err)
	return doc
}

// buscadorFalso responde conforme a função e conta as chamadas por url
type buscadorFalso struct {
	chamadas  map[string]int
	responder func(url string, chamada int) ([]byte, error)
}

func novoBuscadorFalso(responder func(url string, chamada int) ([]byte, error)) *buscadorFalso {
	return &buscadorFalso{chamadas: make(map[string]int), responder: responder}
}

func (b *buscadorFalso) Buscar(_ context.Context, url string) ([]byte, error) {
	b.chamadas[url]++
	return b.responder(url, b.chamadas[url])
}

func paginaDistrito(entradas ...dados.EntradaDistrito) []byte {
	var sb strings.Builder
	sb.WriteString("<html><body><table>")
	sb.WriteString("<tr><th>Obec</th><th>Název</th><th>Výběr okrsku</th></tr>")
	for _, e := range entradas {
		fmt.Fprintf(&sb, `<tr><td><a href="%s">%s</a></td><td>%s</td><td>X</td></tr>`, e.Link, e.Codigo, e.Municipio)
	}
	sb.WriteString(`<tr><td class="hidden_td">-</td><td class="hidden_td">-</td><td class="hidden_td">-</td></tr>`)
	sb.WriteString("</table></body></html>")
	return []byte(sb.String())
}

func paginaMunicipio(registrados, totais, validos string, partidos ...dados.VotoPartido) []byte {
	var sb strings.Builder
	sb.WriteString("<html><body><table>")
	sb.WriteString("<tr><th>Okrsky</th><th>Voliči v seznamu</th></tr>")
	sb.WriteString("<tr><th>celkem</th><th>zpr.</th></tr>")
	fmt.Fprintf(&sb, "<tr><td>1</td><td>1</td><td>100,00</td><td>%s</td><td></td><td></td><td>%s</td><td>%s</td><td></td></tr>",
		registrados, totais, validos)
	sb.WriteString("</table><table>")
	sb.WriteString("<tr><th>Strana</th><th>název</th><th>celkem</th></tr>")
	for i, p := range partidos {
		fmt.Fprintf(&sb, "<tr><td>%d</td><td>%s</td><td>%s</td><td></td></tr>", i+1, p.Partido, p.Votos)
	}
	sb.WriteString("</table></body></html>")
	return []byte(sb.String())
}

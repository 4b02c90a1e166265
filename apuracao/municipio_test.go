package apuracao

import (
	"testing"
	"volby-scrapper/modelos/dados"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtrairRegistroVotos_Fixture(t *testing.T) {
	doc := documento(t, lerFixture(t, "municipio.html"))

	registro, err := ExtrairRegistroVotos(doc)
	require.NoError(t, err)

	assert.Equal(t, "13104", registro.EleitoresRegistrados)
	assert.Equal(t, "8483", registro.VotosTotais)
	assert.Equal(t, "8437", registro.VotosValidos)

	// a linha oculta da segunda tabela não entra
	assert.Equal(t, []dados.VotoPartido{
		{Partido: "Občanská demokratická strana", Votos: "1052"},
		{Partido: "Řád národa - Vlastenecká unie", Votos: "5"},
		{Partido: "ANO 2011", Votos: "2577"},
	}, registro.VotosPorPartido)
}

func TestExtrairRegistroVotos_EspacoRigido(t *testing.T) {
	doc := documento(t, []byte(`<html><body><table>
<tr><th>a</th></tr>
<tr><th>b</th></tr>
<tr><td></td><td></td><td></td><td>1&nbsp;000</td><td></td><td></td><td>900</td><td>850</td></tr>
</table>
<table>
<tr><td>1</td><td>ACME Party</td><td>4&nbsp;2</td></tr>
</table></body></html>`))

	registro, err := ExtrairRegistroVotos(doc)
	require.NoError(t, err)

	assert.Equal(t, "1000", registro.EleitoresRegistrados)
	assert.Equal(t, "900", registro.VotosTotais)
	assert.Equal(t, "850", registro.VotosValidos)
	assert.Equal(t, []dados.VotoPartido{{Partido: "ACME Party", Votos: "42"}}, registro.VotosPorPartido)
}

func TestExtrairRegistroVotos_SemPartidos(t *testing.T) {
	doc := documento(t, paginaMunicipio("100", "90", "85"))

	registro, err := ExtrairRegistroVotos(doc)
	require.NoError(t, err)
	assert.Empty(t, registro.VotosPorPartido)
}

func TestExtrairRegistroVotos_EstruturaInesperada(t *testing.T) {
	testCases := []struct {
		nome   string
		pagina string
	}{
		{
			nome:   "sem tabelas",
			pagina: `<html><body><p>Stránka nenalezena</p></body></html>`,
		},
		{
			nome:   "resumo sem a linha de dados",
			pagina: `<html><body><table><tr><th>a</th></tr><tr><th>b</th></tr></table></body></html>`,
		},
		{
			nome: "resumo com poucas células",
			pagina: `<html><body><table><tr><th>a</th></tr><tr><th>b</th></tr>
<tr><td>1</td><td>2</td><td>3</td><td>4</td></tr></table></body></html>`,
		},
		{
			nome: "partido com poucas células",
			pagina: `<html><body><table><tr><th>a</th></tr><tr><th>b</th></tr>
<tr><td></td><td></td><td></td><td>1</td><td></td><td></td><td>2</td><td>3</td></tr></table>
<table><tr><td>1</td><td>ACME</td></tr></table></body></html>`,
		},
		{
			nome: "partido repetido",
			pagina: string(paginaMunicipio("100", "90", "85",
				dados.VotoPartido{Partido: "A", Votos: "1"},
				dados.VotoPartido{Partido: "A", Votos: "2"},
			)),
		},
	}

	for _, tc := range testCases {
		doc := documento(t, []byte(tc.pagina))
		_, err := ExtrairRegistroVotos(doc)
		require.Error(t, err, tc.nome)
		assert.True(t, EhErroEstrutura(err), tc.nome)
	}
}

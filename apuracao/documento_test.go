package apuracao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsearDocumento(t *testing.T) {
	doc, err := ParsearDocumento(lerFixture(t, "municipio.html"))
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Find("table").Length())
}

func TestParsearDocumento_Ilegivel(t *testing.T) {
	for _, conteudo := range []string{"", " \n\t", "<html><body></body></html>", "apenas texto"} {
		_, err := ParsearDocumento([]byte(conteudo))
		assert.ErrorIs(t, err, ErrConteudoIlegivel, "%q", conteudo)
	}
}

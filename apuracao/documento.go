package apuracao

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

// ParsearDocumento transforma o html em um documento navegável. O parser de html é
// tolerante e quase nunca falha, então um corpo vazio ou sem nenhum elemento é tratado
// como conteúdo ilegível em vez de virar um documento vazio
func ParsearDocumento(conteudo []byte) (*goquery.Document, error) {
	if len(bytes.TrimSpace(conteudo)) == 0 {
		return nil, ErrConteudoIlegivel
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(conteudo))
	if err != nil {
		return nil, errors.Wrap(ErrConteudoIlegivel, err.Error())
	}

	if doc.Find("body").Children().Length() == 0 {
		return nil, ErrConteudoIlegivel
	}

	return doc, nil
}

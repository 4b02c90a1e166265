package apuracao

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	logger "github.com/sirupsen/logrus"
)

const TentativasPadrao = 5

// PoliticaTentativas é o único ponto do programa que repete buscas. Falhas de http,
// de transporte e conteúdo ilegível consomem o mesmo orçamento e não há espera entre tentativas
type PoliticaTentativas struct {
	Maximo int
	Log    *logger.Entry
}

func NovaPoliticaTentativas(maximo int, log *logger.Entry) PoliticaTentativas {
	if maximo <= 0 {
		maximo = TentativasPadrao
	}
	return PoliticaTentativas{Maximo: maximo, Log: log}
}

func (p PoliticaTentativas) BuscarDocumento(ctx context.Context, buscador Buscador, url string) (*goquery.Document, error) {
	maximo := p.Maximo
	if maximo <= 0 {
		maximo = TentativasPadrao
	}

	var ultimo error
	for tentativa := 1; tentativa <= maximo; tentativa++ {
		doc, err := buscarEParsear(ctx, buscador, url)
		if err == nil {
			return doc, nil
		}

		ultimo = err
		if p.Log != nil {
			p.Log.WithField("category", "tentativa").Debugf("Tentativa [%d] de [%d] para %s falhou: %v", tentativa, maximo, url, err)
		}
	}

	return nil, &ErroTentativasEsgotadas{Url: url, Tentativas: maximo, Ultimo: ultimo}
}

func buscarEParsear(ctx context.Context, buscador Buscador, url string) (*goquery.Document, error) {
	conteudo, err := buscador.Buscar(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParsearDocumento(conteudo)
}

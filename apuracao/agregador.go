package apuracao

import (
	"context"
	"net/url"
	"volby-scrapper/modelos/dados"

	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

const UrlBasePadrao = "https://www.volby.cz/pls/ps2017nss/"

// Raspador percorre as páginas do site de forma sequencial, uma requisição por vez
type Raspador struct {
	buscador Buscador
	politica PoliticaTentativas
	base     *url.URL
	log      *logger.Entry
}

func NovoRaspador(buscador Buscador, politica PoliticaTentativas, base string, log *logger.Entry) (*Raspador, error) {
	if base == "" {
		base = UrlBasePadrao
	}

	urlBase, err := url.Parse(base)
	if err != nil {
		return nil, errors.Wrapf(err, "url base inválida %s", base)
	}

	if log == nil {
		log = logger.WithField("component", "raspador")
	}
	if politica.Log == nil {
		politica.Log = log
	}

	return &Raspador{buscador: buscador, politica: politica, base: urlBase, log: log}, nil
}

// RasparDistrito busca a listagem do distrito e depois cada município. A falha de um
// município é registrada e não interrompe os demais, mas a falha da listagem é fatal
func (r *Raspador) RasparDistrito(ctx context.Context, urlDistrito string) (dados.ResultadoDistrito, error) {
	resultado := dados.ResultadoDistrito{
		Linhas: make([]dados.LinhaAgregada, 0),
		Falhas: make([]dados.Falha, 0),
	}

	doc, err := r.politica.BuscarDocumento(ctx, r.buscador, urlDistrito)
	if err != nil {
		return resultado, errors.Wrap(err, "falha ao obter a listagem do distrito")
	}

	entradas, err := ExtrairEntradasDistrito(doc, r.base)
	if err != nil {
		return resultado, errors.Wrapf(err, "falha ao ler a listagem do distrito %s", urlDistrito)
	}

	r.log.WithField("category", "distrito").Infof("[%d] municípios encontrados em %s", len(entradas), urlDistrito)

	for i, entrada := range entradas {
		registro, err := r.rasparMunicipio(ctx, entrada)
		if err != nil {
			resultado.Falhas = append(resultado.Falhas, dados.Falha{
				Municipio: entrada.Municipio,
				Link:      entrada.Link,
				Motivo:    err,
			})
			continue
		}

		resultado.Linhas = append(resultado.Linhas, dados.LinhaAgregada{
			EntradaDistrito: entrada,
			RegistroVotos:   registro,
		})

		r.log.WithField("category", "município").Debugf(
			"Município [%s] raspado com [%d] partidos. [%d] de [%d]",
			entrada.Municipio, len(registro.VotosPorPartido), i+1, len(entradas))
	}

	r.relatarFalhas(resultado.Falhas)

	return resultado, nil
}

func (r *Raspador) rasparMunicipio(ctx context.Context, entrada dados.EntradaDistrito) (dados.RegistroVotos, error) {
	doc, err := r.politica.BuscarDocumento(ctx, r.buscador, entrada.Link)
	if err != nil {
		return dados.RegistroVotos{}, err
	}
	return ExtrairRegistroVotos(doc)
}

func (r *Raspador) relatarFalhas(falhas []dados.Falha) {
	if len(falhas) == 0 {
		return
	}

	r.log.WithField("category", "falhas").Warnf(
		"Não foi possível raspar [%d] municípios. Eles não foram incluídos no arquivo de saída:", len(falhas))

	for _, falha := range falhas {
		tipo := "rede"
		switch {
		case EhErroEstrutura(falha.Motivo):
			tipo = "estrutura"
		case errors.Is(falha.Motivo, ErrConteudoIlegivel):
			tipo = "conteúdo"
		}

		r.log.WithFields(logger.Fields{"category": "falhas", "tipo": tipo}).Warnf(
			"%s: %s (%v)", falha.Municipio, falha.Link, falha.Motivo)
	}
}

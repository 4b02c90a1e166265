package apuracao

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"volby-scrapper/helpers"
	"volby-scrapper/modelos/configuracao"

	l "github.com/ahmetb/go-linq/v3"
	"github.com/pkg/errors"
)

type OpcoesTodos struct {
	Pasta     string
	UsarCache bool
	Zip       bool
}

// ListarDistritos raspa o índice nacional de distritos
func (r *Raspador) ListarDistritos(ctx context.Context, urlIndice string) ([]configuracao.Distrito, error) {
	doc, err := r.politica.BuscarDocumento(ctx, r.buscador, urlIndice)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao obter o índice de distritos")
	}

	return ExtrairDistritos(doc, r.base)
}

// RasparTodos gera um arquivo por distrito na pasta de saída. O erro de um distrito é
// registrado e os demais continuam; os erros são devolvidos juntos ao final
func (r *Raspador) RasparTodos(ctx context.Context, distritos []configuracao.Distrito, opcoes OpcoesTodos) error {
	log := r.log.WithField("category", "todos")

	if err := os.MkdirAll(opcoes.Pasta, 0750); err != nil {
		return errors.Wrapf(err, "falha ao criar a pasta %s", opcoes.Pasta)
	}

	var ordenados []configuracao.Distrito
	l.From(distritos).OrderByT(func(d configuracao.Distrito) string {
		return d.Nome
	}).ToSlice(&ordenados)

	log.Warnf("Raspando [%d] distritos. Isso pode levar alguns minutos", len(ordenados))

	erros := make([]error, 0)
	for i, distrito := range ordenados {
		caminho := filepath.Join(opcoes.Pasta, helpers.NomeArquivoDistrito(distrito.Nome))

		existe, err := arquivoExiste(caminho)
		if err != nil {
			erros = append(erros, err)
			continue
		}
		if existe && opcoes.UsarCache {
			log.Infof("O arquivo %s já existe. Pulando o distrito [%s]...", caminho, distrito.Nome)
			continue
		}

		log.Infof("Raspando o distrito [%s]. [%d] de [%d]", distrito.Nome, i+1, len(ordenados))

		resultado, err := r.RasparDistrito(ctx, distrito.Link)
		if err != nil {
			log.Error(err)
			erros = append(erros, errors.Wrapf(err, "distrito %s", distrito.Nome))
			continue
		}

		if err := SalvarCsv(caminho, resultado.Linhas); err != nil {
			log.Error(err)
			erros = append(erros, errors.Wrapf(err, "distrito %s", distrito.Nome))
			continue
		}

		log.Infof("Arquivo %s criado com [%d] municípios", caminho, len(resultado.Linhas))
	}

	if opcoes.Zip {
		log.Warnf("Comprimindo a pasta %s", opcoes.Pasta)
		if err := ComprimirPasta(opcoes.Pasta); err != nil {
			erros = append(erros, err)
		}
	}

	return juntarErros(erros)
}

func juntarErros(erros []error) error {
	final := l.From(erros).AggregateT(func(atual error, prox error) error {
		return errors.Wrap(prox, atual.Error())
	})

	if final == nil {
		return nil
	}

	return final.(error)
}

func arquivoExiste(caminho string) (bool, error) {
	_, err := os.Stat(caminho)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) == false {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

package helpers

import (
	"strings"

	"github.com/pkg/errors"
)

const CaracteresInvalidos = `<>:"/\|?*`

var ErrNomeArquivoInvalido = errors.New("nome de arquivo inválido")

// NormalizarNomeArquivo valida o nome do arquivo de saída e garante a extensão .csv
func NormalizarNomeArquivo(nome string) (string, error) {
	if nome == "" {
		return "", errors.Wrap(ErrNomeArquivoInvalido, "o nome não pode ser vazio")
	}

	if strings.ContainsAny(nome, CaracteresInvalidos) {
		return "", errors.Wrapf(ErrNomeArquivoInvalido, "o nome não pode conter os caracteres %s", CaracteresInvalidos)
	}

	if strings.HasSuffix(nome, " ") || strings.HasSuffix(nome, ".") {
		return "", errors.Wrap(ErrNomeArquivoInvalido, "o nome não pode terminar com espaço ou ponto")
	}

	if !strings.HasSuffix(nome, ".csv") {
		nome += ".csv"
	}

	return nome, nil
}

// NomeArquivoDistrito monta o nome do arquivo de um distrito no modo de raspagem de todos
func NomeArquivoDistrito(distrito string) string {
	nome := strings.Map(func(r rune) rune {
		if strings.ContainsRune(CaracteresInvalidos, r) {
			return '_'
		}
		return r
	}, distrito)

	return nome + "_results.csv"
}

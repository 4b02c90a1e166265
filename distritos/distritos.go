// Package distritos carrega a tabela de links dos distritos eleitorais.
// A tabela padrão vem embutida no binário e pode ser substituída por um arquivo JSON ou YAML
package distritos

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"volby-scrapper/jsonHelpers"
	"volby-scrapper/modelos/configuracao"

	"github.com/MisterKaiou/go-functional/result"
	l "github.com/ahmetb/go-linq/v3"
	"github.com/pkg/errors"
)

//go:embed distritos.json
var tabelaPadrao []byte

// Padrao retorna a tabela embutida
func Padrao() (configuracao.Distritos, error) {
	return validar(jsonHelpers.DesserializarJson[configuracao.Distritos](tabelaPadrao))
}

// Carregar lê a tabela de um arquivo. Caminho vazio usa a tabela embutida
func Carregar(caminho string) (configuracao.Distritos, error) {
	if caminho == "" {
		return Padrao()
	}

	bytesArq := result.FromTupleOf(os.ReadFile(caminho))
	tabela := result.Bind(bytesArq, func(b []byte) result.Of[configuracao.Distritos] {
		switch strings.ToLower(filepath.Ext(caminho)) {
		case ".yaml", ".yml":
			return result.FromTupleOf(jsonHelpers.DesserializarYaml[configuracao.Distritos](b))
		default:
			return result.FromTupleOf(jsonHelpers.DesserializarJson[configuracao.Distritos](b))
		}
	})

	if tabela.IsError() {
		return configuracao.Distritos{}, errors.Wrapf(tabela.UnwrapError(), "falha ao ler a tabela de distritos %s", caminho)
	}

	return validar(tabela.Unwrap(), nil)
}

// Links retorna o conjunto de links da tabela, útil para validar a entrada do usuário
func Links(d configuracao.Distritos) []string {
	var links []string
	l.From(d.Distritos).SelectT(func(dist configuracao.Distrito) string {
		return dist.Link
	}).ToSlice(&links)
	return links
}

func validar(d configuracao.Distritos, err error) (configuracao.Distritos, error) {
	if err != nil {
		return d, err
	}

	var semLink []string
	l.From(d.Distritos).WhereT(func(dist configuracao.Distrito) bool {
		return dist.Nome == "" || dist.Link == ""
	}).SelectT(func(dist configuracao.Distrito) string {
		return dist.Nome
	}).ToSlice(&semLink)

	if len(semLink) > 0 {
		return d, errors.Errorf("distritos sem nome ou link na tabela: %v", semLink)
	}
	if d.Base == "" {
		return d, errors.New("a tabela de distritos não define a url base")
	}

	return d, nil
}

package apuracao

import (
	"encoding/csv"
	"io"
	"os"
	"volby-scrapper/modelos/dados"

	"github.com/MisterKaiou/go-functional/result"
	"github.com/MisterKaiou/go-functional/unit"
	l "github.com/ahmetb/go-linq/v3"
	"github.com/pkg/errors"
)

const VotosAusentes = "0"

var ColunasFixas = []string{"code", "municipality", "registered voters", "total votes", "valid votes"}

// ColunasPartidos retorna os partidos na ordem em que aparecem pela primeira vez,
// percorrendo as linhas e, dentro de cada linha, a ordem da página
func ColunasPartidos(linhas []dados.LinhaAgregada) []string {
	partidos := make([]string, 0)
	l.From(linhas).SelectManyT(func(linha dados.LinhaAgregada) l.Query {
		return l.From(linha.VotosPorPartido)
	}).SelectT(func(v dados.VotoPartido) string {
		return v.Partido
	}).Distinct().ToSlice(&partidos)
	return partidos
}

// EscreverCsv grava o cabeçalho e uma linha por município. Partidos sem votos no
// município recebem "0"
func EscreverCsv(w io.Writer, linhas []dados.LinhaAgregada) error {
	partidos := ColunasPartidos(linhas)
	escritor := csv.NewWriter(w)

	cabecalho := append(append([]string{}, ColunasFixas...), partidos...)
	if err := escritor.Write(cabecalho); err != nil {
		return errors.Wrap(err, "falha ao escrever o cabeçalho")
	}

	for _, linha := range linhas {
		registro := []string{
			linha.Codigo,
			linha.Municipio,
			linha.EleitoresRegistrados,
			linha.VotosTotais,
			linha.VotosValidos,
		}

		for _, partido := range partidos {
			votos, existe := linha.VotosDoPartido(partido)
			if !existe {
				votos = VotosAusentes
			}
			registro = append(registro, votos)
		}

		if err := escritor.Write(registro); err != nil {
			return errors.Wrapf(err, "falha ao escrever o município %s", linha.Municipio)
		}
	}

	escritor.Flush()
	return errors.Wrap(escritor.Error(), "falha ao escrever o csv")
}

// SalvarCsv cria o arquivo e grava todo o conteúdo de uma vez
func SalvarCsv(caminho string, linhas []dados.LinhaAgregada) error {
	arquivo := result.FromTupleOf(os.Create(caminho))
	res := result.Bind(arquivo, func(f *os.File) result.Of[unit.Unit] {
		errEscrita := EscreverCsv(f, linhas)
		errFechar := f.Close()
		if errEscrita != nil {
			return result.FromTupleOf(unit.Unit{}, errEscrita)
		}
		return result.FromTupleOf(unit.Unit{}, errFechar)
	})

	if res.IsError() {
		return errors.Wrapf(res.UnwrapError(), "falha ao salvar %s", caminho)
	}

	return nil
}

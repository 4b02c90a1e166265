package apuracao

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErroHttp é retornado quando o servidor responde com status diferente de 200
type ErroHttp struct {
	Url    string
	Status int
}

func (e *ErroHttp) Error() string {
	return fmt.Sprintf("a requisição para %s retornou o status %d", e.Url, e.Status)
}

// ErroTransporte envolve falhas de DNS, conexão ou timeout
type ErroTransporte struct {
	Url string
	Err error
}

func (e *ErroTransporte) Error() string {
	return fmt.Sprintf("falha de transporte ao buscar %s: %v", e.Url, e.Err)
}

func (e *ErroTransporte) Unwrap() error { return e.Err }

var ErrConteudoIlegivel = errors.New("o conteúdo recebido não é uma página html utilizável")

// ErroTentativasEsgotadas indica que nenhuma das tentativas de busca teve sucesso
type ErroTentativasEsgotadas struct {
	Url        string
	Tentativas int
	Ultimo     error
}

func (e *ErroTentativasEsgotadas) Error() string {
	return fmt.Sprintf("não foi possível obter %s após %d tentativas: %v", e.Url, e.Tentativas, e.Ultimo)
}

func (e *ErroTentativasEsgotadas) Unwrap() error { return e.Ultimo }

// ErroEstrutura indica que a página existe mas não tem as tabelas, linhas ou células esperadas.
// Não adianta tentar novamente
type ErroEstrutura struct {
	Pagina  string
	Detalhe string
}

func (e *ErroEstrutura) Error() string {
	return fmt.Sprintf("estrutura inesperada na página de %s: %s", e.Pagina, e.Detalhe)
}

func erroEstrutura(pagina, formato string, args ...any) error {
	return &ErroEstrutura{Pagina: pagina, Detalhe: fmt.Sprintf(formato, args...)}
}

// EhErroEstrutura indica que o site mudou de formato
func EhErroEstrutura(err error) bool {
	var e *ErroEstrutura
	return errors.As(err, &e)
}

// EhErroRede indica que o site está fora do ar ou respondendo com erro
func EhErroRede(err error) bool {
	var eh *ErroHttp
	var et *ErroTransporte
	return errors.As(err, &eh) || errors.As(err, &et)
}

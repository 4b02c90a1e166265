package apuracao

import (
	"context"
	"net/http"
	"time"

	"github.com/MisterKaiou/go-functional/result"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	TimeoutPadrao   = 30 * time.Second
	UserAgentPadrao = "volby-scrapper/1.0"
)

// Buscador faz uma única ida e volta na rede e devolve o corpo da resposta
type Buscador interface {
	Buscar(ctx context.Context, url string) ([]byte, error)
}

// OpcoesBuscador com RequisicoesPorSegundo <= 0 não limita as requisições
type OpcoesBuscador struct {
	Timeout               time.Duration
	UserAgent             string
	RequisicoesPorSegundo float64
}

type BuscadorHttp struct {
	cliente *resty.Client
	limite  *rate.Limiter
}

func NovoBuscadorHttp(opcoes OpcoesBuscador) *BuscadorHttp {
	if opcoes.Timeout <= 0 {
		opcoes.Timeout = TimeoutPadrao
	}
	if opcoes.UserAgent == "" {
		opcoes.UserAgent = UserAgentPadrao
	}

	limite := rate.NewLimiter(rate.Inf, 1)
	if opcoes.RequisicoesPorSegundo > 0 {
		limite = rate.NewLimiter(rate.Limit(opcoes.RequisicoesPorSegundo), 1)
	}

	cliente := resty.New().
		SetTimeout(opcoes.Timeout).
		SetHeader("User-Agent", opcoes.UserAgent)

	return &BuscadorHttp{cliente: cliente, limite: limite}
}

func (b *BuscadorHttp) Buscar(ctx context.Context, url string) ([]byte, error) {
	if err := b.limite.Wait(ctx); err != nil {
		return nil, &ErroTransporte{Url: url, Err: err}
	}

	resposta := result.FromTupleOf(b.cliente.R().SetContext(ctx).Get(url))
	corpo := result.Bind(resposta, func(r *resty.Response) result.Of[[]byte] {
		if r.StatusCode() != http.StatusOK {
			return result.FromTupleOf[[]byte](nil, &ErroHttp{Url: url, Status: r.StatusCode()})
		}
		return result.FromTupleOf(r.Body(), nil)
	})

	if corpo.IsError() {
		if resposta.IsError() {
			return nil, &ErroTransporte{Url: url, Err: resposta.UnwrapError()}
		}
		return nil, corpo.UnwrapError()
	}

	return corpo.Unwrap(), nil
}

package main

import (
	"context"
	"time"
	"volby-scrapper/apuracao"
	"volby-scrapper/distritos"
	"volby-scrapper/helpers"
	"volby-scrapper/modelos"
	"volby-scrapper/modelos/configuracao"

	"github.com/alexflint/go-arg"
	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

func main() {
	inicio := time.Now()
	ctx := context.Background()

	args := modelos.Parametros{
		Tentativas:  apuracao.TentativasPadrao,
		Timeout:     apuracao.TimeoutPadrao,
		Verbosidade: logger.WarnLevel,
	}
	arg.MustParse(&args)
	logger.SetLevel(args.Verbosidade)
	logger.SetFormatter(&nested.Formatter{
		HideKeys:    true,
		FieldsOrder: []string{"component", "category"},
	})

	tabela, err := distritos.Carregar(args.Distritos)
	sairSeErro(err)

	buscador := apuracao.NovoBuscadorHttp(apuracao.OpcoesBuscador{
		Timeout:               args.Timeout,
		RequisicoesPorSegundo: args.Rps,
	})
	log := logger.WithField("component", "raspador")
	politica := apuracao.NovaPoliticaTentativas(args.Tentativas, log)
	raspador, err := apuracao.NovoRaspador(buscador, politica, tabela.Base, log)
	sairSeErro(err)

	if args.Url == modelos.AlvoTodos {
		err = raspador.RasparTodos(ctx, tabela.Distritos, apuracao.OpcoesTodos{
			Pasta:     args.Pasta,
			UsarCache: args.UsarCache,
			Zip:       args.Zip,
		})
		if err != nil {
			logger.Errorf("Alguns distritos não foram raspados: %v", err)
		}
		logger.Warnf("Tempo total: %s", time.Since(inicio))
		return
	}

	arquivo, err := validarParametros(args)
	sairSeErro(err)

	validarLinkDistrito(ctx, raspador, tabela, args.Url)

	logger.Warn("Raspando...")
	resultado, err := raspador.RasparDistrito(ctx, args.Url)
	sairSeErro(err)

	err = apuracao.SalvarCsv(arquivo, resultado.Linhas)
	sairSeErro(err)

	logger.Warnf("Arquivo %s criado com [%d] municípios. Tempo total: %s", arquivo, len(resultado.Linhas), time.Since(inicio))
}

func sairSeErro(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}

// validarParametros confere a url e o nome do arquivo e devolve o nome normalizado
func validarParametros(args modelos.Parametros) (string, error) {
	if !helpers.UrlValida(args.Url) {
		return "", errors.Errorf("o primeiro argumento deve ser uma url válida ou '%s': %q", modelos.AlvoTodos, args.Url)
	}

	if args.Arquivo == "" {
		return "", errors.New("o arquivo de saída é obrigatório ao raspar um único distrito")
	}

	return helpers.NormalizarNomeArquivo(args.Arquivo)
}

// validarLinkDistrito compara a url com o índice do site. Se o índice não puder ser
// obtido, a tabela de distritos é usada no lugar
func validarLinkDistrito(ctx context.Context, raspador *apuracao.Raspador, tabela configuracao.Distritos, url string) {
	lista := tabela.Distritos
	if tabela.Indice != "" {
		doSite, err := raspador.ListarDistritos(ctx, tabela.Indice)
		if err != nil {
			logger.Warnf("Não foi possível obter o índice de distritos, usando a tabela local: %v", err)
		} else {
			lista = doSite
		}
	}

	if !helpers.UrlDeDistrito(url, distritos.Links(configuracao.Distritos{Distritos: lista})) {
		logger.Fatalf("O link %s não leva a um distrito eleitoral", url)
	}
}

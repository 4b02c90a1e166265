package modelos

import (
	"time"

	"github.com/sirupsen/logrus"
)

const AlvoTodos = "all"

type Parametros struct {
	Url         string        `arg:"positional, required" placeholder:"URL" help:"O link da listagem de municípios de um distrito ou 'all' para raspar todos os distritos da tabela"`
	Arquivo     string        `arg:"positional" placeholder:"ARQUIVO" help:"O arquivo csv de saída. Obrigatório quando um único distrito é raspado, a extensão .csv é adicionada se ausente"`
	UsarCache   bool          `arg:"-c, --cache" help:"No modo 'all', pula os distritos cujo arquivo já existe na pasta de saída"`
	Pasta       string        `arg:"-p, --pasta" default:"./resultados/" placeholder:"CAMINHO" help:"A pasta onde os arquivos do modo 'all' serão salvos"`
	Zip         bool          `arg:"-z, --zip" help:"Se presente, no modo 'all' a pasta de saída é comprimida e removida ao final"`
	Distritos   string        `arg:"-d, --distritos" placeholder:"ARQUIVO" help:"Um arquivo JSON ou YAML com a tabela de distritos. Se ausente, a tabela embutida é usada"`
	Tentativas  int           `arg:"-n, --tentativas" placeholder:"N" help:"Quantidade máxima de tentativas de busca para cada página"`
	Timeout     time.Duration `arg:"-t, --timeout" placeholder:"DURAÇÃO" help:"Tempo máximo de cada requisição. Ex: 30s"`
	Rps         float64       `arg:"-r, --rps" placeholder:"N" help:"Limite de requisições por segundo ao site. Zero ou negativo desliga o limite"`
	Verbosidade logrus.Level  `arg:"-v, --verbosidade" placeholder:"NÍVEL" help:"Quantos logs devem ser exibidos. Em ordem de criticidade (0 à 6): panic > fatal > error > warn > info > debug > trace"`
}

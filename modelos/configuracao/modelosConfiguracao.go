package configuracao

// Distritos associa o nome de cada distrito ao link da sua listagem de municípios
type Distritos struct {
	Eleicao   string     `json:"eleicao" yaml:"eleicao"`
	Base      string     `json:"base" yaml:"base"`
	Indice    string     `json:"indice" yaml:"indice"`
	Distritos []Distrito `json:"distritos" yaml:"distritos"`
}

type Distrito struct {
	Nome string `json:"nome" yaml:"nome"`
	Link string `json:"link" yaml:"link"`
}

package dados

// EntradaDistrito é uma linha da listagem de municípios de um distrito
type EntradaDistrito struct {
	Codigo    string
	Municipio string
	Link      string
}

type VotoPartido struct {
	Partido string
	Votos   string
}

// RegistroVotos guarda os valores como aparecem na página, já sem os espaços rígidos (U+00A0).
// Nenhuma aritmética é feita sobre eles
type RegistroVotos struct {
	EleitoresRegistrados string
	VotosTotais          string
	VotosValidos         string
	VotosPorPartido      []VotoPartido
}

// VotosDoPartido retorna os votos do partido e se ele aparece no registro
func (r RegistroVotos) VotosDoPartido(partido string) (string, bool) {
	for _, v := range r.VotosPorPartido {
		if v.Partido == partido {
			return v.Votos, true
		}
	}
	return "", false
}

type LinhaAgregada struct {
	EntradaDistrito
	RegistroVotos
}

// Falha identifica um município que não pôde ser raspado. Motivo permite distinguir
// falha de rede de mudança na estrutura da página
type Falha struct {
	Municipio string
	Link      string
	Motivo    error
}

type ResultadoDistrito struct {
	Linhas []LinhaAgregada
	Falhas []Falha
}

package style

type Type string

const (
	TypeFormalidade          Type = "formalidade"
	TypeArgumentativo        Type = "argumentativo"
	TypeSinonimos            Type = "sinonimos"
	TypeAntonimos            Type = "antonimos"
	TypeEstruturaCausal      Type = "estrutura-causal"
	TypeEstruturaComparativa Type = "estrutura-comparativa"
	TypeEstruturaCondicional Type = "estrutura-condicional"
	TypeEstruturaOposicao    Type = "estrutura-oposicao"
)

var AllTypes = []Type{
	TypeFormalidade,
	TypeArgumentativo,
	TypeSinonimos,
	TypeAntonimos,
	TypeEstruturaCausal,
	TypeEstruturaComparativa,
	TypeEstruturaCondicional,
	TypeEstruturaOposicao,
}

func (t Type) IsValid() bool {
	for _, v := range AllTypes {
		if t == v {
			return true
		}
	}
	return false
}

type Source string

const (
	SourceAI       Source = "ai"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
)

package style

// Config carries the slider and selector values of the style controller.
// Fields irrelevant to the requested Type are ignored.
type Config struct {
	FormalityLevel      *int   `json:"formalityLevel,omitempty" validate:"omitempty,gte=0,lte=100"`
	ArgumentativeLevel  *int   `json:"argumentativeLevel,omitempty" validate:"omitempty,gte=0,lte=100"`
	WordDifficulty      string `json:"wordDifficulty,omitempty" validate:"omitempty,oneof=simples medio complexo"`
	MeaningPreservation string `json:"meaningPreservation,omitempty" validate:"omitempty,oneof=preserve change"`
	StructureType       string `json:"structureType,omitempty" validate:"max=64"`
	SelectedStructure   string `json:"selectedStructure,omitempty" validate:"max=64"`
}

func (c Config) formality() int {
	if c.FormalityLevel == nil {
		return 50
	}
	return *c.FormalityLevel
}

func (c Config) argumentative() int {
	if c.ArgumentativeLevel == nil {
		return 50
	}
	return *c.ArgumentativeLevel
}

func (c Config) wordDifficulty() string {
	if c.WordDifficulty == "" {
		return "medio"
	}
	return c.WordDifficulty
}

type Request struct {
	Text   string `json:"text" validate:"max=10000"`
	Type   Type   `json:"type"`
	Config Config `json:"config"`
}

type Response struct {
	ModifiedText string `json:"modifiedText"`
	Source       Source `json:"source"`
}

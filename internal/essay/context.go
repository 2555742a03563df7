package essay

// Paragraphs holds the four paragraph slots of an ENEM-style essay.
type Paragraphs struct {
	Introducao       string `json:"introducao,omitempty"`
	Desenvolvimento1 string `json:"desenvolvimento1,omitempty"`
	Desenvolvimento2 string `json:"desenvolvimento2,omitempty"`
	Conclusao        string `json:"conclusao,omitempty"`
}

// Context is what is known so far about an essay being written.
type Context struct {
	Proposta   string     `json:"proposta,omitempty"`
	Tese       string     `json:"tese,omitempty"`
	Paragrafos Paragraphs `json:"paragrafos"`
}

func (p Paragraphs) All() []string {
	return []string{p.Introducao, p.Desenvolvimento1, p.Desenvolvimento2, p.Conclusao}
}

// Get returns the paragraph for a paragraph section and false for any other section.
func (p Paragraphs) Get(s Section) (string, bool) {
	switch s {
	case SectionIntroducao:
		return p.Introducao, true
	case SectionDesenvolvimento1:
		return p.Desenvolvimento1, true
	case SectionDesenvolvimento2:
		return p.Desenvolvimento2, true
	case SectionConclusao:
		return p.Conclusao, true
	}
	return "", false
}

package essay

type Section string

const (
	SectionOptimization     Section = "optimization"
	SectionTema             Section = "tema"
	SectionTese             Section = "tese"
	SectionIntroducao       Section = "introducao"
	SectionDesenvolvimento1 Section = "desenvolvimento1"
	SectionDesenvolvimento2 Section = "desenvolvimento2"
	SectionConclusao        Section = "conclusao"
)

var AllSections = []Section{
	SectionOptimization,
	SectionTema,
	SectionTese,
	SectionIntroducao,
	SectionDesenvolvimento1,
	SectionDesenvolvimento2,
	SectionConclusao,
}

func (s Section) IsValid() bool {
	for _, v := range AllSections {
		if s == v {
			return true
		}
	}
	return false
}

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

var AllLevels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

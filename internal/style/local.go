package style

import (
	"fmt"
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

var (
	formalWords = map[string]string{
		"você":  "Vossa Senhoria",
		"tá":    "está",
		"pra":   "para",
		"fazer": "realizar",
		"ver":   "analisar",
		"coisa": "elemento",
	}
	informalWords = map[string]string{
		"está":     "tá",
		"para":     "pra",
		"realizar": "fazer",
		"analisar": "ver",
	}
	synonyms = map[string]string{
		"bom":        "excelente",
		"grande":     "amplo",
		"pequeno":    "reduzido",
		"importante": "relevante",
		"problema":   "questão",
		"solução":    "resolução",
	}
	antonyms = map[string]string{
		"bom":      "ruim",
		"grande":   "pequeno",
		"pequeno":  "grande",
		"fácil":    "difícil",
		"difícil":  "fácil",
		"positivo": "negativo",
		"sucesso":  "fracasso",
	}
)

// substitute replaces whole words in a single pass, so swapped pairs
// (grande/pequeno) never cascade into each other.
func substitute(text string, table map[string]string) string {
	return wordPattern.ReplaceAllStringFunc(text, func(w string) string {
		if r, ok := table[w]; ok {
			return r
		}
		return w
	})
}

// Rewrite applies the local substitution tables and templates. It never
// fails and is used whenever the model cannot answer.
func Rewrite(text string, t Type, cfg Config) string {
	lower := strings.ToLower(text)

	switch t {
	case TypeFormalidade:
		switch level := cfg.formality(); {
		case level > 70:
			return substitute(text, formalWords)
		case level < 30:
			return substitute(strings.ReplaceAll(text, "Vossa Senhoria", "você"), informalWords)
		}
		return text

	case TypeArgumentativo:
		switch level := cfg.argumentative(); {
		case level > 70:
			return fmt.Sprintf("É fundamental compreender que %s Portanto, torna-se evidente a necessidade de uma análise mais aprofundada desta questão.", lower)
		case level < 30:
			return text + " Essa é apenas uma perspectiva possível sobre o assunto."
		}
		return fmt.Sprintf("Considerando que %s, pode-se argumentar que esta questão merece atenção especial.", lower)

	case TypeSinonimos:
		return substitute(text, synonyms)

	case TypeAntonimos:
		return substitute(text, antonyms)

	case TypeEstruturaCausal:
		return text + " devido a questões fundamentais, uma vez que os dados demonstram a necessidade de análise aprofundada."

	case TypeEstruturaComparativa:
		return fmt.Sprintf("Assim como observamos em situações similares, também %s, estabelecendo um paralelo importante.", lower)

	case TypeEstruturaCondicional:
		return fmt.Sprintf("Se considerarmos que %s, então podemos concluir que esta análise é fundamental.", lower)

	case TypeEstruturaOposicao:
		return fmt.Sprintf("Embora existam perspectivas contrárias, %s, evidenciando a complexidade da questão.", lower)
	}

	return text
}

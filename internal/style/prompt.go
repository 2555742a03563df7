package style

import (
	"fmt"
	"strings"
)

var difficultyHints = map[string]string{
	"simples":  "Use vocabulário simples e acessível.",
	"medio":    "Use vocabulário de nível intermediário.",
	"complexo": "Use vocabulário erudito e preciso, próprio da norma culta.",
}

var structureHints = map[Type]string{
	TypeEstruturaCausal:      "Reescreva usando estrutura causal, explicitando causas e consequências (porque, visto que, uma vez que, devido a).",
	TypeEstruturaComparativa: "Reescreva usando estrutura comparativa, estabelecendo paralelos (assim como, da mesma forma que, tal qual).",
	TypeEstruturaCondicional: "Reescreva usando estrutura condicional, com hipótese e consequência (se, caso, desde que, contanto que).",
	TypeEstruturaOposicao:    "Reescreva usando estrutura de oposição, contrapondo ideias (embora, contudo, no entanto, apesar de).",
}

func formalityDirective(level int) string {
	switch {
	case level > 70:
		return fmt.Sprintf("Reescreva o texto em registro formal (nível %d de 100), adequado à norma culta da redação do ENEM.", level)
	case level < 30:
		return fmt.Sprintf("Reescreva o texto em registro informal e coloquial (nível %d de 100).", level)
	}
	return fmt.Sprintf("Reescreva o texto em registro neutro (nível %d de 100), nem rebuscado nem coloquial.", level)
}

func argumentativeDirective(level int) string {
	switch {
	case level > 70:
		return fmt.Sprintf("Torne o texto fortemente argumentativo (nível %d de 100), com posicionamento explícito e conectivos conclusivos.", level)
	case level < 30:
		return fmt.Sprintf("Torne o texto mais expositivo e menos assertivo (nível %d de 100), apresentando a ideia como uma perspectiva possível.", level)
	}
	return fmt.Sprintf("Torne o texto moderadamente argumentativo (nível %d de 100).", level)
}

// BuildPrompt renders the rewriting instruction for one request.
func BuildPrompt(req Request) string {
	var b strings.Builder

	b.WriteString("Você é um especialista em redação argumentativa brasileira e revisão de estilo.\n\n")

	switch req.Type {
	case TypeFormalidade:
		b.WriteString(formalityDirective(req.Config.formality()))
		b.WriteString("\n")
		b.WriteString(difficultyHints[req.Config.wordDifficulty()])
		b.WriteString("\n")
		if req.Config.MeaningPreservation == "change" {
			b.WriteString("Você pode reformular as ideias livremente.\n")
		} else {
			b.WriteString("Preserve integralmente o sentido original.\n")
		}
	case TypeArgumentativo:
		b.WriteString(argumentativeDirective(req.Config.argumentative()))
		b.WriteString("\n")
	case TypeSinonimos:
		b.WriteString("Substitua palavras por sinônimos adequados, mantendo o sentido e a correção gramatical.\n")
	case TypeAntonimos:
		b.WriteString("Substitua as palavras-chave por antônimos, invertendo o sentido do texto de forma coerente.\n")
	default:
		b.WriteString(structureHints[req.Type])
		b.WriteString("\n")
		if req.Config.StructureType != "" {
			fmt.Fprintf(&b, "Organize o período no formato \"%s\".\n", req.Config.StructureType)
		}
		if req.Config.SelectedStructure != "" {
			fmt.Fprintf(&b, "Estrutura escolhida pelo estudante: \"%s\".\n", req.Config.SelectedStructure)
		}
	}

	fmt.Fprintf(&b, "\nTEXTO ORIGINAL:\n\"%s\"\n\n", req.Text)
	b.WriteString("Responda APENAS com o texto reescrito, sem aspas, sem comentários e sem explicações.")
	return b.String()
}

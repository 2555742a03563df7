package coach

import (
	"fmt"
	"strings"

	"github.com/saulo-duarte/dissertai-lambda/internal/essay"
)

var paragraphLabels = []struct {
	section essay.Section
	label   string
}{
	{essay.SectionIntroducao, "📖 SUA INTRODUÇÃO"},
	{essay.SectionDesenvolvimento1, "🎯 SEU 1º ARGUMENTO"},
	{essay.SectionDesenvolvimento2, "🎯 SEU 2º ARGUMENTO"},
	{essay.SectionConclusao, "🏁 SUA CONCLUSÃO"},
}

// BuildPrompt assembles the coaching prompt for a known section. The caller
// must check section.IsValid first.
func BuildPrompt(message string, section essay.Section, ctx essay.Context, level essay.Level) string {
	var b strings.Builder

	b.WriteString(rolePreamble)
	b.WriteString(sectionInstructions[section][level])
	b.WriteString("\n\n")

	if ctx.Proposta != "" {
		fmt.Fprintf(&b, "📝 PROPOSTA: \"%s\"\n", ctx.Proposta)
	}
	if ctx.Tese != "" {
		fmt.Fprintf(&b, "💡 IDEIA DO TEXTO: \"%s\"\n", ctx.Tese)
	}
	for _, p := range paragraphLabels {
		if p.section == section {
			continue
		}
		if v, _ := ctx.Paragrafos.Get(p.section); v != "" {
			fmt.Fprintf(&b, "%s: \"%s\"\n", p.label, v)
		}
	}

	fmt.Fprintf(&b, "\n❓ SUA PERGUNTA: \"%s\"\n\n", message)

	if section == essay.SectionOptimization {
		b.WriteString(optimizationDirective(ctx))
	} else {
		b.WriteString(levelStyles[level])
	}

	b.WriteString(responseTemplate)
	return b.String()
}

func optimizationDirective(ctx essay.Context) string {
	switch {
	case ctx.Tese == "" && ctx.Proposta == "":
		return "Responda como um professor experiente em redação dando orientações iniciais sobre como criar uma boa ideia do texto.\n" +
			"Use uma estrutura didática com passos claros, exemplos práticos e dicas úteis.\n" +
			"Seja encorajador e mostre que é possível aprender!\n\n"
	case ctx.Tese == "":
		return fmt.Sprintf("O usuário tem a proposta \"%s\" mas não sabe como formular sua ideia.\n", ctx.Proposta) +
			"Dê orientações específicas para este tema, sugerindo possíveis abordagens e perspectivas.\n" +
			"Ofereça 2-3 exemplos de boas ideias para este tema específico.\n\n"
	case ctx.Proposta == "":
		return fmt.Sprintf("O usuário tem uma ideia (\"%s\") mas não definiu uma proposta específica.\n", ctx.Tese) +
			"Analise a ideia e sugira como aprimorá-la, tornando-a mais específica e argumentativa.\n\n"
	default:
		return "Responda seguindo esta estrutura exata:\n\n" +
			"1. **📝 Análise da sua ideia atual:**\n[Breve análise do que está bom e o que pode melhorar]\n\n" +
			"2. **✨ Versão otimizada:**\n\"[Aqui coloque a versão melhorada da ideia entre aspas]\"\n\n" +
			"3. **💡 Principais melhorias:**\n[Liste 2-3 pontos específicos que foram aprimorados]\n\n" +
			"4. **🎯 Dica extra:**\n[Uma sugestão adicional para fortalecer ainda mais a ideia]\n\n" +
			"IMPORTANTE: A versão otimizada deve estar entre aspas para facilitar a aplicação automática.\n\n"
	}
}

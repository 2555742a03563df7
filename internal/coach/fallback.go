package coach

import "github.com/saulo-duarte/dissertai-lambda/internal/essay"

const genericFallback = "🎯 Continue desenvolvendo sua ideia com exemplos específicos e mantenha a coesão com sua tese principal. Lembre-se de conectar todas as partes do seu texto de forma harmônica!"

var fallbackSuggestions = map[essay.Section]levelText{
	essay.SectionOptimization: {
		essay.LevelBeginner:     "🎯 REFINAMENTO DE IDEIA\n\n💡 ANÁLISE RÁPIDA\nSua pergunta mostra que você quer criar uma boa base para sua redação.\n\n📝 SUGESTÃO PRINCIPAL\nTorne sua ideia específica: em vez de \"educação é importante\", diga \"educação digital prepara jovens para o mercado de trabalho\".\n\n🔧 COMO MELHORAR\n• Defina sua posição clara (a favor, contra, ou perspectiva específica)\n• Seja específico sobre qual aspecto do tema você vai abordar\n• Pense em que argumentos e exemplos você usará\n\n❓ PRÓXIMA ETAPA\nMe conte sobre que tema você quer escrever para eu te ajudar com ideias específicas?",
		essay.LevelIntermediate: "🎯 **Aprimorando sua ideia do texto**\n\n📊 **Estrutura ideal:**\n\n1️⃣ **Posicionamento claro:** Sua opinião bem definida sobre o tema\n\n2️⃣ **Especificidade:** Evite generalizações, seja preciso\n\n3️⃣ **Conexão argumentativa:** Sua ideia deve anunciar que argumentos virão\n\n4️⃣ **Relevância social:** Mostre por que o tema importa para a sociedade\n\n💼 **Estratégias avançadas:**\n• Use dados ou contexto atual\n• Mencione diferentes perspectivas\n• Conecte com outros temas sociais\n• Antecipe possíveis objeções\n\n🔗 **Conectivos úteis:** \"Diante disso\", \"Nesse contexto\", \"Considerando que\"\n\n🎯 **Meta:** Sua ideia deve convencer o leitor desde o início!",
		essay.LevelAdvanced:     "🧠 **Refinamento conceitual da ideia**\n\n🎨 **Sofisticação argumentativa:**\n\n1️⃣ **Multidimensionalidade:** Aborde aspectos históricos, sociais, econômicos\n\n2️⃣ **Nuances:** Evite polarizações, explore complexidades\n\n3️⃣ **Inovação:** Apresente perspectivas menos óbvias\n\n4️⃣ **Interdisciplinaridade:** Conecte diferentes áreas do conhecimento\n\n📚 **Técnicas avançadas:**\n• Paradoxos e contradições\n• Analogias elaboradas\n• Referências implícitas\n• Questionamentos filosóficos\n\n✨ **Elegância textual:** Use linguagem sofisticada sem rebuscamento\n\n🎯 **Objetivo:** Demonstrar domínio pleno e originalidade de pensamento!",
	},
	essay.SectionTema: {
		essay.LevelBeginner:     "🎯 DEFINIÇÃO DE TEMA\n\n💡 ANÁLISE RÁPIDA\nUm tema amplo demais deixa a redação genérica.\n\n📝 SUGESTÃO PRINCIPAL\nFaça um recorte: em vez de \"meio ambiente\", escolha \"o descarte de lixo eletrônico nas cidades brasileiras\".\n\n🔧 COMO MELHORAR\n• Identifique as palavras-chave da proposta\n• Escolha um grupo social ou lugar específico\n• Pergunte-se qual problema concreto existe ali\n\n❓ PRÓXIMA ETAPA\nQual é a frase temática da proposta que você está trabalhando?",
		essay.LevelIntermediate: "🎯 **Delimitando o recorte temático**\n\n🔍 **Recorte:** Defina quem é afetado, onde e desde quando\n\n⚖️ **Abordagem:** Escolha entre causas, consequências ou desafios\n\n📚 **Repertório:** Pense em uma referência que ilumine esse recorte\n\n🔗 **Conectivos úteis:** \"No que tange a\", \"No cenário brasileiro\"",
		essay.LevelAdvanced:     "🎯 **Nuances temáticas**\n\n🌐 **Tensões:** Identifique interesses em conflito dentro do tema\n\n🧠 **Camadas:** Relacione dimensões históricas, econômicas e culturais\n\n✨ **Originalidade:** Evite o recorte óbvio e proponha um ângulo menos explorado\n\n🎯 **Objetivo:** Um tema preciso sustenta uma tese sofisticada",
	},
	essay.SectionTese: {
		essay.LevelBeginner:     "🎯 CONSTRUÇÃO DE TESE\n\n💡 ANÁLISE RÁPIDA\nA tese é a sua opinião sobre o tema, dita em uma frase.\n\n📝 SUGESTÃO PRINCIPAL\nUse o modelo: \"[Problema] persiste devido a [causa 1] e [causa 2]\".\n\n🔧 COMO MELHORAR\n• Deixe claro o seu posicionamento\n• Anuncie os dois argumentos que virão\n• Evite frases vagas como \"é um problema sério\"\n\n❓ PRÓXIMA ETAPA\nQuer me mostrar sua tese para eu te ajudar a ajustá-la?",
		essay.LevelIntermediate: "🎯 **Fortalecendo sua tese**\n\n💪 **Persuasão:** Troque afirmações genéricas por causas concretas\n\n🧭 **Direção:** Cada argumento anunciado deve virar um parágrafo\n\n📊 **Sustentação:** Pense no repertório que comprova cada causa\n\n🔗 **Conectivos úteis:** \"Isso ocorre devido a\", \"Sobretudo em razão de\"",
		essay.LevelAdvanced:     "🎯 **Sofisticando sua tese**\n\n🧠 **Complexidade:** Apresente a relação entre as causas, não apenas a lista\n\n🎭 **Contraponto:** Reconheça uma objeção e mostre por que sua posição prevalece\n\n✨ **Precisão vocabular:** Use termos técnicos do campo discutido\n\n🏆 **Objetivo:** Uma tese que organize todo o projeto de texto",
	},
	essay.SectionIntroducao: {
		essay.LevelBeginner:     "🎯 ESTRUTURA INTRODUÇÃO\n\n💡 ANÁLISE RÁPIDA\nVocê precisa organizar sua introdução em três partes bem definidas.\n\n📝 SUGESTÃO PRINCIPAL\nUse a estrutura: Contextualização (apresentar tema) + Problematização (mostrar importância) + Tese (sua opinião).\n\n🔧 COMO MELHORAR\n• Comece com \"No mundo contemporâneo...\" ou dados atuais\n• Explique por que o tema é um problema relevante hoje\n• Termine com sua posição clara sobre o assunto\n\n❓ PRÓXIMA ETAPA\nQuer me mostrar sua introdução atual para eu te dar sugestões específicas?",
		essay.LevelIntermediate: "🎯 **Aprimorando sua Introdução**\n\n📈 **Contextualização mais rica:**\nUse dados atuais, contexto histórico ou comparações internacionais\n\n🔍 **Problematização sofisticada:**\nMostre causas e consequências do problema\n\n💭 **Tese mais persuasiva:**\nUse argumentos de autoridade ou dados para sustentar sua posição\n\n🔗 **Conectivos eficazes:** \"Diante desse cenário\", \"Nessa perspectiva\", \"Sob essa ótica\"",
		essay.LevelAdvanced:     "🎯 **Refinando sua Introdução**\n\n🌐 **Contextualização multidimensional:**\nAborde aspectos históricos, sociais, econômicos e culturais\n\n🧠 **Problematização complexa:**\nExplore paradoxos, contradições e múltiplas causas\n\n✨ **Tese sofisticada:**\nProponha soluções inovadoras com base em evidências robustas\n\n📚 **Conectivos refinados:** \"Sob essa perspectiva\", \"Nessa conjuntura\", \"À luz dessas considerações\"",
	},
	essay.SectionDesenvolvimento1: {
		essay.LevelBeginner:     "🎯 **Estrutura do 1º Desenvolvimento**\n\n📌 **Tópico frasal:**\nComece com a ideia principal do parágrafo. Ex: \"Em primeiro lugar...\"\n\n📖 **Fundamentação:**\nExplique sua ideia com mais detalhes\n\n📊 **Exemplificação:**\nUse dados, pesquisas, casos históricos ou atuais\n\n🔚 **Conclusão do parágrafo:**\nAmarre a ideia conectando com sua tese\n\n💡 **Conectivos úteis:** \"Ademais\", \"Nesse sentido\", \"Por conseguinte\"",
		essay.LevelIntermediate: "🎯 **Fortalecendo seu 1º Argumento**\n\n🎪 **Diversifique exemplos:**\nCombine dados estatísticos + casos reais + referências culturais\n\n📚 **Fundamentação robusta:**\nCite especialistas, pesquisas acadêmicas ou organismos oficiais\n\n🔗 **Coesão textual:**\nConecte claramente com a tese da introdução\n\n💪 **Argumento convincente:**\nMostre causa-efeito, compare cenários ou apresente evidências contundentes",
		essay.LevelAdvanced:     "🎯 **Sofisticando seu 1º Argumento**\n\n🧩 **Perspectiva multidisciplinar:**\nIntegre visões sociológicas, filosóficas, econômicas\n\n🎭 **Exemplos não-óbvios:**\nUse referencias culturais elaboradas, casos internacionais, dados comparativos\n\n🌊 **Progressão argumentativa:**\nCrie uma linha de raciocínio que evolui logicamente\n\n🎨 **Sofisticação textual:**\nUse períodos mais complexos e vocabulário técnico apropriado",
	},
	essay.SectionDesenvolvimento2: {
		essay.LevelBeginner:     "🎯 **Estrutura do 2º Desenvolvimento**\n\n🔄 **Argumento diferente:**\nTraga uma nova perspectiva que também defenda sua tese\n\n📌 **Mesma estrutura:**\nTópico frasal + fundamentação + exemplos + conclusão\n\n🎯 **Tipos de argumento:**\n• Econômico, social, ambiental, cultural, histórico\n\n🔗 **Conecte com o 1º:**\nUse \"Além disso\", \"Outrossim\", \"Paralelamente\"\n\n💡 **Varie os exemplos:** Se usou dados no 1º, use casos históricos no 2º",
		essay.LevelIntermediate: "🎯 **Complementando sua Argumentação**\n\n🔄 **Argumento complementar:**\nAborde outra dimensão do problema (ex: se falou de causas, fale de consequências)\n\n📊 **Varie evidências:**\nAlterne entre dados nacionais/internacionais, casos históricos/contemporâneos\n\n🧭 **Linha argumentativa:**\nMantenha coerência com o conjunto da argumentação\n\n🎨 **Conectivos variados:** \"Ademais\", \"Por outro lado\", \"Simultaneamente\"",
		essay.LevelAdvanced:     "🎯 **Complexificando a Argumentação**\n\n🌐 **Perspectiva dialética:**\nExplore tensões, contradições ou múltiplas facetas do problema\n\n🎭 **Abordagem inovadora:**\nUse analogias sofisticadas, casos paradigmáticos, análises comparativas\n\n🧠 **Articulação sofisticada:**\nCrie pontes conceituais entre os argumentos\n\n✨ **Excelência textual:** Demonstre domínio pleno da modalidade culta",
	},
	essay.SectionConclusao: {
		essay.LevelBeginner:     "🎯 **Estrutura da Conclusão**\n\n🔄 **1º Passo - Retomada:**\nLembre rapidamente sua tese principal\n\n📝 **2º Passo - Síntese:**\nResumir os argumentos mais importantes\n\n🛠️ **3º Passo - Proposta (obrigatória):**\n• **Agente:** Quem vai fazer (governo, sociedade, escola...)\n• **Ação:** O que vai fazer especificamente\n• **Meio:** Como vai fazer\n• **Finalidade:** Para que/por que\n• **Detalhamento:** Mais informações sobre como\n\n💡 **Exemplo:** \"O governo federal deve implementar (ação) políticas de conscientização (detalhamento) por meio de campanhas educativas (meio) a fim de reduzir a violência urbana (finalidade).\"",
		essay.LevelIntermediate: "🎯 **Aprimorando sua Conclusão**\n\n🎪 **Síntese elegante:**\nRetome argumentos de forma articulada, não apenas listando\n\n🛠️ **Proposta detalhada:**\nApresente soluções viáveis com múltiplos agentes\n\n🎯 **Especificidade:**\nEvite propostas genéricas (\"educação\" → \"campanhas nas redes sociais\")\n\n🔗 **Coesão total:**\nAmarre todos os elementos do texto de forma harmônica\n\n✨ **Impacto:** Termine com uma frase marcante que reforce sua tese",
		essay.LevelAdvanced:     "🎯 **Excelência na Conclusão**\n\n🧠 **Síntese sofisticada:**\nDemonstre a complexidade da questão e sua compreensão profunda\n\n🌍 **Proposta inovadora:**\nApresente soluções criativas, com múltiplas dimensões\n\n🎭 **Articulação magistral:**\nIntegre todos os elementos textuais com maestria\n\n💫 **Fechamento impactante:**\nTermine com reflexão profunda ou perspectiva visionária\n\n🏆 **Demonstração de excelência:** Evidencie domínio completo da escrita argumentativa",
	},
}

// FallbackSuggestion is the canned advice used when the model is unavailable.
func FallbackSuggestion(section essay.Section, level essay.Level) string {
	if texts, ok := fallbackSuggestions[section]; ok {
		if text, ok := texts[level]; ok {
			return text
		}
	}
	return genericFallback
}

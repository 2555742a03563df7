package repertoire

type themeCategory struct {
	key   string
	items []Repertoire
}

type themeTemplate struct {
	theme      string
	categories []themeCategory
}

// themeTemplates back the offline path. Category keys are ordered; the first
// one is the theme default.
var themeTemplates = []themeTemplate{
	{
		theme: "crise climática",
		categories: []themeCategory{
			{key: "environment", items: []Repertoire{
				{
					Title:       "Acordo de Paris",
					Description: "Tratado internacional de 2015 sobre mudanças climáticas. Excelente para discutir compromissos globais e ação climática.",
					Type:        TypeLaws,
					Category:    CategoryEnvironment,
					Popularity:  PopularityVeryPopular,
					Year:        "2015",
					Rating:      45,
					Keywords:    []string{"clima", "acordo", "paris", "internacional", "carbono"},
				},
				{
					Title:       "An Inconvenient Truth",
					Description: "Documentário de Al Gore sobre aquecimento global. Referência clássica para conscientização ambiental.",
					Type:        TypeDocumentaries,
					Category:    CategoryEnvironment,
					Popularity:  PopularityPopular,
					Year:        "2006",
					Rating:      42,
					Keywords:    []string{"aquecimento", "global", "gore", "conscientização", "documentário"},
				},
				{
					Title:       "Relatório IPCC 2023",
					Description: "Relatório científico sobre mudanças climáticas. Dados atuais e projeções sobre o futuro do planeta.",
					Type:        TypeResearch,
					Category:    CategoryEnvironment,
					Popularity:  PopularityModerate,
					Year:        "2023",
					Rating:      48,
					Keywords:    []string{"ipcc", "científico", "mudanças", "climáticas", "dados"},
				},
				{
					Title:       "Greta Thunberg e o movimento climático",
					Description: "Ativismo jovem por justiça climática. Exemplo de mobilização social e protagonismo juvenil.",
					Type:        TypeEvents,
					Category:    CategoryEnvironment,
					Popularity:  PopularityVeryPopular,
					Year:        "2018",
					Rating:      44,
					Keywords:    []string{"greta", "ativismo", "juventude", "movimento", "justiça"},
				},
			}},
			{key: "books", items: []Repertoire{
				{
					Title:       "O Colapso do Clima - David Wallace-Wells",
					Description: "Análise científica sobre os impactos das mudanças climáticas. Cenários futuros baseados em evidências.",
					Type:        TypeBooks,
					Category:    CategoryEnvironment,
					Popularity:  PopularityModerate,
					Year:        "2019",
					Rating:      46,
					Keywords:    []string{"colapso", "científico", "impactos", "futuro", "evidências"},
				},
			}},
			{key: "movies", items: []Repertoire{
				{
					Title:       "Don't Look Up",
					Description: "Sátira sobre negacionismo climático e científico. Metáfora sobre inação diante de crises globais.",
					Type:        TypeMovies,
					Category:    CategoryEnvironment,
					Popularity:  PopularityPopular,
					Year:        "2021",
					Rating:      41,
					Keywords:    []string{"sátira", "negacionismo", "inação", "crise", "global"},
				},
			}},
		},
	},
	{
		theme: "tecnologia",
		categories: []themeCategory{
			{key: "technology", items: []Repertoire{
				{
					Title:       "Lei Geral de Proteção de Dados (LGPD)",
					Description: "Marco regulatório brasileiro para proteção de dados pessoais. Essencial para temas sobre privacidade digital.",
					Type:        TypeLaws,
					Category:    CategoryTechnology,
					Popularity:  PopularityVeryPopular,
					Year:        "2020",
					Rating:      47,
					Keywords:    []string{"lgpd", "proteção", "dados", "privacidade", "digital"},
				},
				{
					Title:       "The Social Dilemma",
					Description: "Documentário sobre os impactos das redes sociais. Aborda vício digital e manipulação algorítmica.",
					Type:        TypeDocumentaries,
					Category:    CategoryTechnology,
					Popularity:  PopularityPopular,
					Year:        "2020",
					Rating:      43,
					Keywords:    []string{"redes", "sociais", "algoritmo", "vício", "manipulação"},
				},
				{
					Title:       "Black Mirror",
					Description: "Série que explora os aspectos sombrios da tecnologia. Reflexões sobre futuro distópico e dependência digital.",
					Type:        TypeSeries,
					Category:    CategoryTechnology,
					Popularity:  PopularityVeryPopular,
					Year:        "2011",
					Rating:      46,
					Keywords:    []string{"distopia", "futuro", "dependência", "tecnologia", "reflexão"},
				},
			}},
		},
	},
	{
		theme: "educação",
		categories: []themeCategory{
			{key: "education", items: []Repertoire{
				{
					Title:       "Constituição Federal Art. 205",
					Description: "Direito à educação na Constituição brasileira. Base legal para discutir acesso e qualidade educacional.",
					Type:        TypeLaws,
					Category:    CategoryEducation,
					Popularity:  PopularityVeryPopular,
					Year:        "1988",
					Rating:      49,
					Keywords:    []string{"constituição", "direito", "educação", "acesso", "qualidade"},
				},
				{
					Title:       "Paulo Freire - Pedagogia do Oprimido",
					Description: "Obra fundamental sobre educação libertadora. Referência mundial em pedagogia crítica.",
					Type:        TypeBooks,
					Category:    CategoryEducation,
					Popularity:  PopularityPopular,
					Year:        "1968",
					Rating:      48,
					Keywords:    []string{"freire", "pedagogia", "libertadora", "crítica", "educação"},
				},
			}},
		},
	},
}

var genericRepertoires = []Repertoire{
	{
		Title:       "Declaração Universal dos Direitos Humanos",
		Description: "Marco histórico de 1948 que estabelece direitos fundamentais. Excelente referência para temas sobre dignidade humana.",
		Type:        TypeLaws,
		Category:    CategorySocial,
		Popularity:  PopularityVeryPopular,
		Year:        "1948",
		Rating:      49,
		Keywords:    []string{"direitos", "humanos", "onu", "dignidade", "universal"},
	},
	{
		Title:       "1984 - George Orwell",
		Description: "Distopia clássica sobre vigilância e controle estatal. Ideal para temas de tecnologia e liberdade.",
		Type:        TypeBooks,
		Category:    CategoryPolitics,
		Popularity:  PopularityVeryPopular,
		Year:        "1949",
		Rating:      48,
		Keywords:    []string{"distopia", "vigilância", "controle", "orwell", "liberdade"},
	},
	{
		Title:       "Pesquisa Datafolha 2024",
		Description: "Dados estatísticos atuais sobre comportamento social brasileiro. Fonte confiável para argumentação.",
		Type:        TypeResearch,
		Category:    CategorySocial,
		Popularity:  PopularityModerate,
		Year:        "2024",
		Rating:      42,
		Keywords:    []string{"pesquisa", "dados", "estatística", "brasil", "social"},
	},
	{
		Title:       "Agenda 2030 da ONU",
		Description: "Objetivos de Desenvolvimento Sustentável globais. Referência para temas de sustentabilidade.",
		Type:        TypeEvents,
		Category:    CategoryEnvironment,
		Popularity:  PopularityPopular,
		Year:        "2015",
		Rating:      45,
		Keywords:    []string{"onu", "sustentabilidade", "objetivos", "desenvolvimento", "global"},
	},
}

func (t themeTemplate) all() []Repertoire {
	var out []Repertoire
	for _, c := range t.categories {
		out = append(out, c.items...)
	}
	return out
}

func (t themeTemplate) category(key string) ([]Repertoire, bool) {
	for _, c := range t.categories {
		if c.key == key {
			return c.items, true
		}
	}
	return nil, false
}

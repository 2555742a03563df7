package repertoire

type Type string

const (
	TypeMovies        Type = "movies"
	TypeBooks         Type = "books"
	TypeLaws          Type = "laws"
	TypeResearch      Type = "research"
	TypeNews          Type = "news"
	TypeDocumentaries Type = "documentaries"
	TypeEvents        Type = "events"
	TypeData          Type = "data"
	TypeSeries        Type = "series"
	TypeMusic         Type = "music"
)

type Category string

const (
	CategorySocial        Category = "social"
	CategoryEnvironment   Category = "environment"
	CategoryTechnology    Category = "technology"
	CategoryEducation     Category = "education"
	CategoryPolitics      Category = "politics"
	CategoryEconomy       Category = "economy"
	CategoryCulture       Category = "culture"
	CategoryHealth        Category = "health"
	CategoryEthics        Category = "ethics"
	CategoryGlobalization Category = "globalization"
)

type Popularity string

const (
	PopularityVeryPopular Popularity = "very-popular"
	PopularityPopular     Popularity = "popular"
	PopularityModerate    Popularity = "moderate"
	PopularityUncommon    Popularity = "uncommon"
	PopularityRare        Popularity = "rare"
)

type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// filterAll is the UI value meaning "no filter".
const filterAll = "all"

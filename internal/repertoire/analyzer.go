package repertoire

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxKeywords   = 8
	maxCategories = 3
	maxTypes      = 4
	minWordLength = 3
)

type queryPattern struct {
	pattern    string
	categories []Category
}

// Patterns map essay themes to categories. Some entries name content types
// (books, research, ...) on purpose: the UI treats them as category chips too.
var queryPatterns = []queryPattern{
	{"clima", []Category{CategoryEnvironment, "research", "documentaries"}},
	{"tecnologia", []Category{CategoryTechnology, "books", "documentaries"}},
	{"educação", []Category{CategoryEducation, "books", "laws"}},
	{"sociedade", []Category{CategorySocial, "research", "news"}},
	{"política", []Category{CategoryPolitics, "books", "news"}},
	{"meio ambiente", []Category{CategoryEnvironment, "research", "documentaries"}},
	{"direitos humanos", []Category{CategorySocial, "laws", "events"}},
	{"economia", []Category{CategoryEconomy, "research", "news"}},
	{"cultura", []Category{CategoryCulture, "books", "movies"}},
	{"saúde", []Category{CategoryHealth, "research", "news"}},
	{"globalização", []Category{CategoryGlobalization, "books", "research"}},
}

type typeCategories struct {
	typ        Type
	categories []Category
}

var typeCategoryTable = []typeCategories{
	{TypeMovies, []Category{CategoryCulture, CategorySocial, CategoryPolitics}},
	{TypeBooks, []Category{CategoryEducation, CategoryCulture, CategoryPolitics, CategorySocial}},
	{TypeLaws, []Category{CategoryPolitics, CategorySocial, CategoryEducation}},
	{TypeResearch, []Category{CategoryHealth, CategoryEnvironment, CategoryTechnology, CategorySocial}},
	{TypeNews, []Category{CategoryPolitics, CategoryEconomy, CategorySocial}},
	{TypeDocumentaries, []Category{CategoryEnvironment, CategoryTechnology, CategorySocial}},
	{TypeEvents, []Category{CategoryPolitics, CategorySocial, CategoryCulture}},
	{TypeData, []Category{CategoryEconomy, CategoryHealth, CategorySocial}},
}

var (
	defaultCategories = []Category{CategorySocial, CategoryTechnology}
	defaultTypes      = []Type{TypeBooks, TypeResearch, TypeNews}
)

// queryWords lowercases the query and keeps the words longer than two
// characters, with surrounding punctuation removed.
func queryWords(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if utf8.RuneCountInString(w) >= minWordLength {
			words = append(words, w)
		}
	}
	return words
}

// Analyze is the local query analysis. It never calls the model.
func Analyze(query string) Analysis {
	normalized := strings.ToLower(strings.TrimSpace(query))
	words := queryWords(normalized)

	keywords := words
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	keywords = append([]string{}, keywords...)

	var categories []Category
	for _, qp := range queryPatterns {
		if matchesPattern(normalized, words, qp.pattern) {
			categories = append(categories, qp.categories...)
		}
	}

	var types []Type
	if len(categories) == 0 {
		categories = append([]Category{}, defaultCategories...)
		types = append([]Type{}, defaultTypes...)
	} else {
		for _, tc := range typeCategoryTable {
			if intersects(tc.categories, categories) {
				types = append(types, tc.typ)
			}
		}
	}

	return Analysis{
		Keywords:            keywords,
		SuggestedTypes:      limit(dedupe(types), maxTypes),
		SuggestedCategories: limit(dedupe(categories), maxCategories),
		NormalizedQuery:     normalized,
	}
}

func matchesPattern(normalized string, words []string, pattern string) bool {
	if strings.Contains(normalized, pattern) {
		return true
	}
	for _, w := range words {
		if strings.Contains(pattern, w) {
			return true
		}
	}
	return false
}

func intersects(a, b []Category) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func dedupe[T comparable](in []T) []T {
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func limit[T any](in []T, n int) []T {
	if len(in) > n {
		return in[:n]
	}
	return in
}

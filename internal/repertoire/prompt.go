package repertoire

import (
	"fmt"
	"strings"
)

const (
	DefaultBatchSize = 6
	MaxBatchSize     = 12
)

const (
	allTypesHint      = "books|laws|movies|research|documentaries|news|data|events"
	allCategoriesHint = "social|environment|technology|education|politics"
	allPopularityHint = "very-popular|popular|moderate"
)

func clampBatchSize(n int) int {
	if n <= 0 {
		return DefaultBatchSize
	}
	if n > MaxBatchSize {
		return MaxBatchSize
	}
	return n
}

// BuildBatchPrompt renders the single prompt sent for a repertoire batch.
func BuildBatchPrompt(query string, filters Filters, batchSize int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Query: \"%s\"\n", query)
	fmt.Fprintf(&b, "Você gera repertórios socioculturais reais e verificáveis para redações do ENEM, com foco no contexto brasileiro quando aplicável.\n")

	typeHint := allTypesHint
	if filters.HasType() {
		typeHint = filters.Type
		fmt.Fprintf(&b, "IMPORTANT: Generate ONLY \"%s\" type repertoires. All items must have \"type\": \"%s\".\n", filters.Type, filters.Type)
	}
	categoryHint := allCategoriesHint
	if filters.HasCategory() {
		categoryHint = filters.Category
		fmt.Fprintf(&b, "IMPORTANT: All items must have \"category\": \"%s\".\n", filters.Category)
	}
	popularityHint := allPopularityHint
	if filters.HasPopularity() {
		popularityHint = filters.Popularity
		fmt.Fprintf(&b, "IMPORTANT: All items must have \"popularity\": \"%s\".\n", filters.Popularity)
	}

	fmt.Fprintf(&b, "Generate %d relevant repertoires as a JSON array only, no text outside the JSON:\n", batchSize)
	fmt.Fprintf(&b, `[{
  "title": "Title",
  "description": "Detailed description explaining what this repertoire is, how to use it effectively in essays, which themes it supports, and specific argumentative angles it provides. Include practical usage tips and contexts where it's most powerful (200-300 characters)",
  "type": "%s",
  "category": "%s",
  "popularity": "%s",
  "year": "year",
  "rating": 35-49,
  "keywords": ["k1","k2","k3","k4"]
}]`, typeHint, categoryHint, popularityHint)

	return b.String()
}

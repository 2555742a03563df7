package repertoire

import (
	"sort"
	"strings"
)

const (
	titleWeight       = 3
	descriptionWeight = 2
	keywordWeight     = 1
)

// Score sums, for every query word, 3 points for a title hit, 2 for a
// description hit and 1 when any keyword contains it.
func Score(words []string, item Repertoire) int {
	title := strings.ToLower(item.Title)
	description := strings.ToLower(item.Description)

	score := 0
	for _, w := range words {
		if strings.Contains(title, w) {
			score += titleWeight
		}
		if strings.Contains(description, w) {
			score += descriptionWeight
		}
		for _, k := range item.Keywords {
			if strings.Contains(strings.ToLower(k), w) {
				score += keywordWeight
				break
			}
		}
	}
	return score
}

// Rank returns a copy of items ordered by descending relevance to query.
// Items with equal scores keep their input order.
func Rank(query string, items []Repertoire) []Repertoire {
	if len(items) <= 1 {
		return items
	}

	words := queryWords(query)
	scores := make([]int, len(items))
	order := make([]int, len(items))
	for i, it := range items {
		scores[i] = Score(words, it)
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	ranked := make([]Repertoire, len(items))
	for i, idx := range order {
		ranked[i] = items[idx]
	}
	return ranked
}

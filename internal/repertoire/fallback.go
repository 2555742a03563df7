package repertoire

import "strings"

// FallbackSize is how many items the offline path always returns.
const FallbackSize = 4

// Fallback builds a batch from the static templates. It always returns
// exactly FallbackSize items; items honoring the filters come first and the
// generic list fills whatever is missing.
func Fallback(query string, filters Filters) []Repertoire {
	keywords := Analyze(query).Keywords
	queryLower := strings.ToLower(query)

	var selected []Repertoire
	for _, tpl := range themeTemplates {
		if !matchesTheme(queryLower, keywords, tpl.theme) {
			continue
		}
		selected = selectFromTheme(tpl, filters)
		break
	}

	if filters.HasPopularity() {
		selected = filterBy(selected, func(r Repertoire) bool {
			return string(r.Popularity) == filters.Popularity
		})
	}

	selected = pad(selected, func(r Repertoire) bool {
		return (!filters.HasType() || string(r.Type) == filters.Type) &&
			(!filters.HasPopularity() || string(r.Popularity) == filters.Popularity)
	})
	selected = pad(selected, func(r Repertoire) bool {
		return !filters.HasType() || string(r.Type) == filters.Type
	})
	selected = pad(selected, func(Repertoire) bool { return true })

	return cloneAll(selected[:FallbackSize])
}

func matchesTheme(queryLower string, keywords []string, theme string) bool {
	if strings.Contains(queryLower, theme) {
		return true
	}
	for _, k := range keywords {
		if strings.Contains(theme, k) {
			return true
		}
	}
	return false
}

func selectFromTheme(tpl themeTemplate, filters Filters) []Repertoire {
	if filters.HasType() {
		pool := tpl.all()
		if filters.HasCategory() {
			if items, ok := tpl.category(filters.Category); ok {
				pool = items
			}
		}
		return filterBy(pool, func(r Repertoire) bool {
			return string(r.Type) == filters.Type
		})
	}

	key := tpl.categories[0].key
	if filters.HasCategory() {
		key = filters.Category
	}
	if items, ok := tpl.category(key); ok {
		return append([]Repertoire{}, items...)
	}
	return tpl.all()
}

func filterBy(items []Repertoire, keep func(Repertoire) bool) []Repertoire {
	out := make([]Repertoire, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// pad appends generic items accepted by keep until FallbackSize is reached,
// skipping titles already present.
func pad(selected []Repertoire, keep func(Repertoire) bool) []Repertoire {
	if len(selected) >= FallbackSize {
		return selected
	}
	seen := make(map[string]bool, len(selected))
	for _, s := range selected {
		seen[s.Title] = true
	}
	for _, g := range genericRepertoires {
		if len(selected) >= FallbackSize {
			break
		}
		if seen[g.Title] || !keep(g) {
			continue
		}
		seen[g.Title] = true
		selected = append(selected, g)
	}
	return selected
}

func cloneAll(items []Repertoire) []Repertoire {
	out := make([]Repertoire, len(items))
	for i, it := range items {
		it.Keywords = append([]string{}, it.Keywords...)
		out[i] = it
	}
	return out
}

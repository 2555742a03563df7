package repertoire_test

import (
	"testing"

	"github.com/saulo-duarte/dissertai-lambda/internal/repertoire"
	"github.com/stretchr/testify/assert"
)

func titles(items []repertoire.Repertoire) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func TestRankOrdersByWeightedHits(t *testing.T) {
	items := []repertoire.Repertoire{
		{Title: "Sem relação", Description: "nada"},
		{Title: "Outro", Description: "fala de desigualdade"},
		{Title: "Desigualdade no Brasil", Description: "texto"},
		{Title: "Qualquer", Description: "x", Keywords: []string{"desigualdade"}},
	}

	ranked := repertoire.Rank("desigualdade", items)
	assert.Equal(t, []string{"Desigualdade no Brasil", "Outro", "Qualquer", "Sem relação"}, titles(ranked))
}

func TestRankIsStableForTies(t *testing.T) {
	items := []repertoire.Repertoire{
		{Title: "A"}, {Title: "B saúde"}, {Title: "C"}, {Title: "D saúde"}, {Title: "E"},
	}

	ranked := repertoire.Rank("saúde", items)
	assert.Equal(t, []string{"B saúde", "D saúde", "A", "C", "E"}, titles(ranked))
}

func TestRankDoesNotMutateInput(t *testing.T) {
	items := []repertoire.Repertoire{{Title: "Z"}, {Title: "clima"}}
	_ = repertoire.Rank("clima", items)
	assert.Equal(t, []string{"Z", "clima"}, titles(items))
}

func TestRankShortLists(t *testing.T) {
	assert.Nil(t, repertoire.Rank("x", nil))
	one := []repertoire.Repertoire{{Title: "só"}}
	assert.Equal(t, one, repertoire.Rank("qualquer", one))
}

func TestScoreIsMonotonicInMatchedWords(t *testing.T) {
	item := repertoire.Repertoire{
		Title:       "Crise hídrica",
		Description: "Escassez de água nas metrópoles",
		Keywords:    []string{"água", "seca"},
	}

	assert.Equal(t, 0, repertoire.Score([]string{"energia"}, item))
	assert.Equal(t, 3, repertoire.Score([]string{"crise"}, item))
	assert.Equal(t, 3+3, repertoire.Score([]string{"crise", "água"}, item))
	assert.Equal(t, 3+3+2, repertoire.Score([]string{"crise", "água", "escassez"}, item))
}

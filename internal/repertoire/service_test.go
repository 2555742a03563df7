package repertoire_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/saulo-duarte/dissertai-lambda/internal/gemini/geminitest"
	"github.com/saulo-duarte/dissertai-lambda/internal/repertoire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aiArray = "```json\n" + `[
  {"title":"Marco Civil da Internet","description":"Lei 12.965/2014 que estabelece princípios para o uso da internet no Brasil.","type":"laws","category":"technology","popularity":"popular","year":2014,"rating":44,"keywords":["internet","neutralidade"]},
  {"title":"O Dilema das Redes","description":"Documentário sobre algoritmos e redes sociais.","type":"documentaries","category":"technology","popularity":"very-popular","year":"2020","rating":43,"keywords":["algoritmo","redes"]}
]` + "\n```"

func TestGenerateBatchUsesModelOutput(t *testing.T) {
	gen := &geminitest.StubGenerator{Response: aiArray}
	svc := repertoire.NewService(gen)

	batch := svc.GenerateBatch(context.Background(), "internet e democracia", repertoire.Filters{}, 0)

	require.Equal(t, repertoire.SourceAI, batch.Source)
	require.Len(t, batch.Items, 2)
	assert.Equal(t, repertoire.Year("2014"), batch.Items[0].Year)
	assert.Equal(t, repertoire.Year("2020"), batch.Items[1].Year)
	assert.Equal(t, 1, gen.Calls())
	assert.Contains(t, gen.LastPrompt(), "Generate 6 relevant repertoires")
}

func TestGenerateBatchAcceptsWrappedObject(t *testing.T) {
	gen := &geminitest.StubGenerator{Response: `{"repertoires":[{"title":"ECA","description":"Estatuto","type":"laws","category":"social","popularity":"popular","year":"1990","rating":45,"keywords":["infância"]}]}`}
	batch := repertoire.NewService(gen).GenerateBatch(context.Background(), "infância", repertoire.Filters{}, 3)

	assert.Equal(t, repertoire.SourceAI, batch.Source)
	assert.Equal(t, "ECA", batch.Items[0].Title)
}

func TestGenerateBatchFallsBackOnFailure(t *testing.T) {
	filters := repertoire.Filters{Type: "laws"}
	responses := map[string]*geminitest.StubGenerator{
		"call error":   {Err: errors.New("quota exceeded")},
		"invalid json": {Response: "Aqui estão seus repertórios: ..."},
		"empty array":  {Response: "[]"},
		"no field":     {Response: `{"items":[]}`},
	}

	want := repertoire.Fallback("tecnologia", filters)
	for name, gen := range responses {
		t.Run(name, func(t *testing.T) {
			batch := repertoire.NewService(gen).GenerateBatch(context.Background(), "tecnologia", filters, 10)
			assert.Equal(t, repertoire.SourceFallback, batch.Source)
			assert.Equal(t, want, batch.Items)
			assert.Equal(t, 1, gen.Calls(), "no retries")
		})
	}
}

func TestBuildBatchPromptFilters(t *testing.T) {
	p := repertoire.BuildBatchPrompt("saúde mental", repertoire.Filters{Type: "books", Category: "health", Popularity: "rare"}, 4)

	assert.Contains(t, p, `Query: "saúde mental"`)
	assert.Contains(t, p, `Generate ONLY "books" type repertoires`)
	assert.Contains(t, p, `"category": "health"`)
	assert.Contains(t, p, `"popularity": "rare"`)
	assert.Contains(t, p, "Generate 4 relevant repertoires")

	open := repertoire.BuildBatchPrompt("x", repertoire.Filters{Type: "all"}, 6)
	assert.False(t, strings.Contains(open, "Generate ONLY"))
	assert.Contains(t, open, "books|laws|movies")
}

func TestGenerateBatchClampsSize(t *testing.T) {
	gen := &geminitest.StubGenerator{Err: errors.New("offline")}
	repertoire.NewService(gen).GenerateBatch(context.Background(), "x", repertoire.Filters{}, 99)
	assert.Contains(t, gen.LastPrompt(), "Generate 12 relevant repertoires")
}

func TestSearchRanksBatch(t *testing.T) {
	gen := &geminitest.StubGenerator{Err: errors.New("offline")}
	resp := repertoire.NewService(gen).Search(context.Background(), repertoire.SearchRequest{Query: "distopia e vigilância"})

	assert.Equal(t, repertoire.SourceFallback, resp.Source)
	require.Len(t, resp.Repertoires, 4)
	assert.Equal(t, "1984 - George Orwell", resp.Repertoires[0].Title)
	assert.Equal(t, []string{"distopia", "vigilância"}, resp.Analysis.Keywords)
}

func TestParseBatchToleratesRatingFormats(t *testing.T) {
	raw := `[
  {"title":"A","description":"a","type":"books","category":"social","popularity":"popular","year":"2001","rating":44.5,"keywords":[]},
  {"title":"B","description":"b","type":"books","category":"social","popularity":"popular","year":"2002","rating":"45","keywords":[]},
  {"title":"C","description":"c","type":"books","category":"social","popularity":"popular","year":"2003","rating":null,"keywords":[]}
]`

	items, err := repertoire.ParseBatch(raw)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, repertoire.Rating(45), items[0].Rating)
	assert.Equal(t, repertoire.Rating(45), items[1].Rating)
	assert.Equal(t, repertoire.Rating(0), items[2].Rating)

	_, err = repertoire.ParseBatch(`[{"title":"D","rating":"alto"}]`)
	assert.Error(t, err)
}

func TestGenerateBatchKeepsFractionalRatings(t *testing.T) {
	gen := &geminitest.StubGenerator{Response: `[{"title":"Marco Civil da Internet","description":"Lei 12.965/2014","type":"laws","category":"technology","popularity":"popular","year":2014,"rating":44.5,"keywords":["internet"]},{"title":"O Dilema das Redes","description":"Documentário","type":"documentaries","category":"technology","popularity":"popular","year":"2020","rating":"43","keywords":["redes"]}]`}

	batch := repertoire.NewService(gen).GenerateBatch(context.Background(), "internet", repertoire.Filters{}, 2)

	assert.Equal(t, repertoire.SourceAI, batch.Source)
	require.Len(t, batch.Items, 2)
	assert.Equal(t, "Marco Civil da Internet", batch.Items[0].Title)
}

func TestBuildBatchPromptKeepsQueryVerbatim(t *testing.T) {
	p := repertoire.BuildBatchPrompt(`"fake news" e eleições`, repertoire.Filters{}, 6)

	assert.Contains(t, p, `Query: ""fake news" e eleições"`)
	assert.NotContains(t, p, `\"fake news\"`)
}

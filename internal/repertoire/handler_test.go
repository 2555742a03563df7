package repertoire_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/dissertai-lambda/internal/gemini"
	"github.com/saulo-duarte/dissertai-lambda/internal/gemini/geminitest"
	"github.com/saulo-duarte/dissertai-lambda/internal/repertoire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(gen gemini.Generator) http.Handler {
	return repertoire.Routes(repertoire.NewRepertoireContainer(gen).Handler)
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := newTestRouter(&geminitest.StubGenerator{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analyze?q=tecnologia", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var a repertoire.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	assert.Equal(t, []string{"tecnologia"}, a.Keywords)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analyze", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchEndpoint(t *testing.T) {
	gen := &geminitest.StubGenerator{Err: errors.New("offline")}
	router := newTestRouter(gen)

	rec := httptest.NewRecorder()
	body := `{"query":"crise climática","filters":{"type":"all"},"batchSize":6}`
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp repertoire.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, repertoire.SourceFallback, resp.Source)
	assert.Len(t, resp.Repertoires, 4)
}

func TestSearchEndpointRejectsEmptyQuery(t *testing.T) {
	gen := &geminitest.StubGenerator{}
	router := newTestRouter(gen)

	for _, body := range []string{`{"query":""}`, `{"query":"   "}`, `not json`} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	assert.Zero(t, gen.Calls())
}

func TestRankEndpoint(t *testing.T) {
	router := newTestRouter(&geminitest.StubGenerator{})
	body := `{"query":"vacina","repertoires":[{"title":"Outro"},{"title":"Revolta da Vacina"}]}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rank", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []repertoire.Repertoire
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Equal(t, "Revolta da Vacina", items[0].Title)
}

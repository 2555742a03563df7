package coach_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/dissertai-lambda/internal/coach"
	"github.com/saulo-duarte/dissertai-lambda/internal/gemini/geminitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionsEndpoint(t *testing.T) {
	gen := &geminitest.StubGenerator{Response: "resposta"}
	router := coach.Routes(coach.NewCoachContainer(gen).Handler)

	body := `{"message":"ajuda","section":"tese","context":{"proposta":"Mobilidade urbana"}}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/suggestions", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp coach.SuggestionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "resposta", resp.Response)
	assert.Equal(t, coach.SourceAI, resp.Source)
	assert.Contains(t, gen.LastPrompt(), `📝 PROPOSTA: "Mobilidade urbana"`)
}

func TestSuggestionsEndpointValidation(t *testing.T) {
	gen := &geminitest.StubGenerator{}
	router := coach.Routes(coach.NewCoachContainer(gen).Handler)

	for _, body := range []string{`{"section":"tese"}`, `{"message":"oi"}`, `{`} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/suggestions", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	assert.Zero(t, gen.Calls())
}

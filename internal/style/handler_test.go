package style_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/saulo-duarte/dissertai-lambda/internal/gemini/geminitest"
	"github.com/saulo-duarte/dissertai-lambda/internal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextModificationEndpoint(t *testing.T) {
	gen := &geminitest.StubGenerator{Err: errors.New("offline")}
	router := style.Routes(style.NewStyleContainer(gen, style.NewMemoryCache(time.Minute)).Handler)

	body := `{"text":"você tá certo","type":"formalidade","config":{"formalityLevel":80,"wordDifficulty":"medio"}}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp style.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, style.SourceFallback, resp.Source)
	assert.Equal(t, "Vossa Senhoria está certo", resp.ModifiedText)
}

func TestTextModificationEndpointBadRequests(t *testing.T) {
	gen := &geminitest.StubGenerator{Response: "x"}
	router := style.Routes(style.NewStyleContainer(gen, style.NewMemoryCache(time.Minute)).Handler)

	for _, body := range []string{
		`{"text":"","type":"sinonimos"}`,
		`{"text":"ok","type":"desconhecido"}`,
		`{"text":"ok","type":"formalidade","config":{"formalityLevel":150}}`,
		`{"text":"ok","type":"formalidade","config":{"wordDifficulty":"dificil"}}`,
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	assert.Zero(t, gen.Calls())
}

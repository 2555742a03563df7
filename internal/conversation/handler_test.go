package conversation_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/dissertai-lambda/internal/auth"
	"github.com/saulo-duarte/dissertai-lambda/internal/config"
	"github.com/saulo-duarte/dissertai-lambda/internal/conversation"
	"github.com/saulo-duarte/dissertai-lambda/internal/essay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (http.Handler, string) {
	t.Helper()
	t.Setenv("JWT_SECRET", "segredo-de-teste-das-conversas")
	auth.Init()

	c := conversation.NewConversationContainer(newTestDB(t))

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Mount("/conversations", conversation.Routes(c.Handler))
		r.Get("/dashboard", c.Handler.Dashboard)
	})

	token, err := auth.GenerateJWT(uuid.NewString(), "student", time.Hour)
	require.NoError(t, err)
	return r, token
}

func do(h http.Handler, token, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestConversationEndpointsRequireToken(t *testing.T) {
	h, _ := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, do(h, "", http.MethodGet, "/conversations", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(h, "", http.MethodGet, "/dashboard", "").Code)
}

func TestConversationLifecycle(t *testing.T) {
	h, token := newTestServer(t)

	rec := do(h, token, http.MethodPost, "/conversations",
		`{"currentSection":"tese","context":{"proposta":"Fake news"},"messages":[{"type":"user","content":"oi"}]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created conversation.ConversationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	path := "/conversations/" + created.ID.String()

	rec = do(h, token, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code)

	update := `{"version":%d,"currentSection":"introducao","messages":[{"type":"user","content":"oi"},{"type":"ai","content":"olá"}]}`
	rec = do(h, token, http.MethodPut, path, fmt.Sprintf(update, 1))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(h, token, http.MethodPut, path, fmt.Sprintf(update, 1))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(h, token, http.MethodGet, "/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var dash conversation.DashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))
	assert.Equal(t, 2, dash.Stats.Messages)

	rec = do(h, token, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(h, token, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConversationBadRequests(t *testing.T) {
	h, token := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest, do(h, token, http.MethodGet, "/conversations/nao-e-uuid", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(h, token, http.MethodPost, "/conversations", `{"messages":[{"type":"bot","content":"x"}]}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(h, token, http.MethodPut, "/conversations/"+uuid.NewString(), `{"messages":[]}`).Code)
}

func TestConversationRejectsUnknownSections(t *testing.T) {
	h, token := newTestServer(t)

	for _, body := range []string{
		`{"currentSection":"rascunho"}`,
		`{"messages":[{"type":"user","content":"x","section":"rascunho"}]}`,
	} {
		rec := do(h, token, http.MethodPost, "/conversations", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}

	rec := do(h, token, http.MethodPut, "/conversations/"+uuid.NewString(), `{"version":1,"currentSection":"epilogo"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConversationAcceptsEverySection(t *testing.T) {
	for _, s := range essay.AllSections {
		dto := conversation.CreateConversationDTO{
			CurrentSection: s,
			Messages:       []conversation.Message{{Type: conversation.MessageTypeAI, Content: "ok", Section: s}},
		}
		assert.NoError(t, config.Validate(dto), s)
	}
	assert.NoError(t, config.Validate(conversation.CreateConversationDTO{}))
}

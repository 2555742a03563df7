package repertoire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/analyze", h.Analyze)
	r.Post("/search", h.Search)
	r.Post("/rank", h.Rank)
	return r
}

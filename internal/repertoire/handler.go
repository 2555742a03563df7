package repertoire

import (
	"net/http"
	"strings"

	"github.com/saulo-duarte/dissertai-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Analyze godoc
// @Summary Local query analysis (no AI call)
// @Tags repertoires
// @Param q query string true "search query"
// @Success 200 {object} repertoire.Analysis
// @Router /repertoires/analyze [get]
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		http.Error(w, "query parameter q is required", http.StatusBadRequest)
		return
	}
	config.JSON(w, http.StatusOK, Analyze(q))
}

// Search godoc
// @Summary Generate and rank repertoires for a query
// @Tags repertoires
// @Param body body repertoire.SearchRequest true "search"
// @Success 200 {object} repertoire.SearchResponse
// @Router /repertoires/search [post]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SearchRequest
	if err := config.DecodeAndValidate(r, &req); err != nil {
		log.WithError(err).Warn("Invalid repertoire search request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		http.Error(w, "query is required", http.StatusBadRequest)
		return
	}

	config.JSON(w, http.StatusOK, h.service.Search(r.Context(), req))
}

// Rank godoc
// @Summary Rank repertoires by keyword relevance
// @Tags repertoires
// @Param body body repertoire.RankRequest true "items to rank"
// @Success 200 {array} repertoire.Repertoire
// @Router /repertoires/rank [post]
func (h *Handler) Rank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if err := config.DecodeAndValidate(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ranked := Rank(req.Query, req.Repertoires)
	if ranked == nil {
		ranked = []Repertoire{}
	}
	config.JSON(w, http.StatusOK, ranked)
}

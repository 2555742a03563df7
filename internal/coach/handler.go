package coach

import (
	"net/http"

	"github.com/saulo-duarte/dissertai-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Suggest godoc
// @Summary Contextual writing suggestion for one essay section
// @Tags coach
// @Param body body coach.SuggestionRequest true "message, section and essay context"
// @Success 200 {object} coach.SuggestionResponse
// @Failure 400 {string} string "invalid body"
// @Router /coach/suggestions [post]
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestionRequest
	if err := config.DecodeAndValidate(r, &req); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid coach request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	config.JSON(w, http.StatusOK, h.service.Suggest(r.Context(), req))
}

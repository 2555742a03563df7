package style

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/dissertai-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Modify godoc
// @Summary Rewrite a text in the requested style
// @Tags style
// @Param body body style.Request true "text, type and config"
// @Success 200 {object} style.Response
// @Failure 400 {string} string "empty text or unknown type"
// @Router /text-modification [post]
func (h *Handler) Modify(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req Request
	if err := config.DecodeAndValidate(r, &req); err != nil {
		log.WithError(err).Warn("Invalid text modification request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.service.Modify(r.Context(), req)
	if errors.Is(err, ErrEmptyText) || errors.Is(err, ErrUnknownType) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.WithError(err).Error("Failed to modify text")
		http.Error(w, "Failed to modify text", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

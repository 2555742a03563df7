package conversation

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/dissertai-lambda/internal/auth"
	"github.com/saulo-duarte/dissertai-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func userIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func conversationIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		http.Error(w, "id required", http.StatusBadRequest)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, ErrConversationNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrVersionConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		config.WithContext(r.Context()).WithError(err).Errorf("Failed to %s conversation", action)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// Create godoc
// @Summary Save a new conversation snapshot
// @Tags conversations
// @Security BearerAuth
// @Param body body conversation.CreateConversationDTO true "snapshot"
// @Success 201 {object} conversation.ConversationResponse
// @Router /conversations [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := userIDFromRequest(r)
	if !ok {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CreateConversationDTO
	if err := config.DecodeAndValidate(r, &dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, err := h.service.Create(r.Context(), userID, dto)
	if err != nil {
		writeServiceError(w, r, err, "create")
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

// List godoc
// @Summary List the user's conversations, most recent first
// @Tags conversations
// @Security BearerAuth
// @Success 200 {array} conversation.ConversationSummary
// @Router /conversations [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	responses, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "list")
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

// Get godoc
// @Summary Load one conversation snapshot
// @Tags conversations
// @Security BearerAuth
// @Param id path string true "conversation id"
// @Success 200 {object} conversation.ConversationResponse
// @Failure 404 {string} string "not found"
// @Router /conversations/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := conversationIDFromRequest(w, r)
	if !ok {
		return
	}

	response, err := h.service.Get(r.Context(), id, userID)
	if err != nil {
		writeServiceError(w, r, err, "get")
		return
	}

	config.JSON(w, http.StatusOK, response)
}

// Replace godoc
// @Summary Replace a conversation snapshot
// @Description Fails with 409 when version is not the stored one.
// @Tags conversations
// @Security BearerAuth
// @Param id path string true "conversation id"
// @Param body body conversation.UpdateConversationDTO true "snapshot"
// @Success 200 {object} conversation.ConversationResponse
// @Failure 409 {string} string "stale version"
// @Router /conversations/{id} [put]
func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := userIDFromRequest(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := conversationIDFromRequest(w, r)
	if !ok {
		return
	}

	var dto UpdateConversationDTO
	if err := config.DecodeAndValidate(r, &dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, err := h.service.Replace(r.Context(), id, userID, dto)
	if err != nil {
		writeServiceError(w, r, err, "update")
		return
	}

	config.JSON(w, http.StatusOK, response)
}

// Delete godoc
// @Summary Delete a conversation
// @Tags conversations
// @Security BearerAuth
// @Param id path string true "conversation id"
// @Success 204
// @Router /conversations/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := conversationIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		writeServiceError(w, r, err, "delete")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Dashboard godoc
// @Summary Usage statistics over the user's conversations
// @Tags dashboard
// @Security BearerAuth
// @Success 200 {object} conversation.DashboardResponse
// @Router /dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	response, err := h.service.Dashboard(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "summarize")
		return
	}

	config.JSON(w, http.StatusOK, response)
}

package auth

import (
	"net/http"

	"github.com/saulo-duarte/dissertai-lambda/internal/config"
)

// SessionCookie carries the token for browser clients.
const SessionCookie = "jwt"

type Handler struct {
	cookieDomain string
	secure       bool
}

func NewHandler() *Handler {
	return &Handler{
		cookieDomain: config.GetEnv("COOKIE_DOMAIN", ""),
		secure:       config.GetEnv("COOKIE_SECURE", "true") != "false",
	}
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sameSite := http.SameSiteNoneMode
	if !h.secure {
		sameSite = http.SameSiteLaxMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Path:     "/",
		Domain:   h.cookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: sameSite,
	})

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "sessão encerrada",
	})
}

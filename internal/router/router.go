package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/dissertai-lambda/docs"
	"github.com/saulo-duarte/dissertai-lambda/internal/auth"
	"github.com/saulo-duarte/dissertai-lambda/internal/coach"
	"github.com/saulo-duarte/dissertai-lambda/internal/config"
	"github.com/saulo-duarte/dissertai-lambda/internal/conversation"
	"github.com/saulo-duarte/dissertai-lambda/internal/middlewares"
	"github.com/saulo-duarte/dissertai-lambda/internal/repertoire"
	"github.com/saulo-duarte/dissertai-lambda/internal/style"
)

type RouterConfig struct {
	RepertoireHandler   *repertoire.Handler
	CoachHandler        *coach.Handler
	StyleHandler        *style.Handler
	ConversationHandler *conversation.Handler
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/health", Health)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Mount("/repertoires", repertoire.Routes(cfg.RepertoireHandler))
	r.Mount("/coach", coach.Routes(cfg.CoachHandler))
	r.Mount("/text-modification", style.Routes(cfg.StyleHandler))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/conversations", conversation.Routes(cfg.ConversationHandler))
		r.Get("/dashboard", cfg.ConversationHandler.Dashboard)
	})
	return r
}

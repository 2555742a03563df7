package middlewares

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
	"github.com/saulo-duarte/dissertai-lambda/internal/config"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// AllowedOrigins reads ALLOWED_ORIGINS as a comma separated list.
func AllowedOrigins() []string {
	raw := config.GetEnv("ALLOWED_ORIGINS", "")
	if raw == "" {
		return defaultOrigins
	}

	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func CorsMiddleware(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   AllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	})(next)
}

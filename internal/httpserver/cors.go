package httpserver

import (
	"net/http"

	"apodapi/internal/services/auth"

	"github.com/go-chi/cors"
)

// NewCORS builds the CORS handler. An empty origin list allows any origin.
func NewCORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type", auth.HeaderAPIKey},
		ExposedHeaders: []string{HeaderRequestID, "Retry-After"},
		MaxAge:         300,
	})
}

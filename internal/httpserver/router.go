package httpserver

import (
	"net/http"

	"apodapi/internal/api/handlers"
	"apodapi/internal/i18n"
	"apodapi/internal/services/auth"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter configures the main router. CORS and language detection wrap
// the router itself so preflight requests are answered before method matching
// and unmatched routes are still localized.
func SetupRouter(h *handlers.Handlers, am *auth.Middleware, limiter *RateLimiter, tr *i18n.Translator, origins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(RequestID, Recovery, AccessLog)

	// Public Endpoints
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	r.HandleFunc("/api/info", h.GetInfo).Methods("GET")
	r.HandleFunc("/languages", handlers.GetSupportedLanguages).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	addPictureRoutes(r, h, am, limiter)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, r, http.StatusNotFound, i18n.MsgNotFound, i18n.MsgNoRoute, map[string]interface{}{"Path": r.URL.Path})
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, r, http.StatusMethodNotAllowed, i18n.MsgMethodNotAllowed, i18n.MsgMethodNotOnPath, map[string]interface{}{"Method": r.Method, "Path": r.URL.Path})
	})

	return NewCORS(origins)(tr.Middleware(r))
}

// addPictureRoutes configures the APOD endpoints.
func addPictureRoutes(r *mux.Router, h *handlers.Handlers, am *auth.Middleware, limiter *RateLimiter) {
	r.HandleFunc("/apod", h.GetLatestPicture).Methods("GET")
	// Registered before /apod/{date} so "random" is not taken for a date.
	r.HandleFunc("/apod/random", h.GetRandomPicture).Methods("GET")
	r.HandleFunc("/apod/{date}", h.GetPictureByDate).Methods("GET")

	// Ingest: rate limit, then key check, then handler.
	r.Handle("/apod", limiter.Limit(am.RequireAPIKey(http.HandlerFunc(h.IngestPicture)))).Methods("POST")

	r.HandleFunc("/apods", h.GetAllPictures).Methods("GET")
	r.HandleFunc("/apods/search", h.SearchPictures).Methods("GET")
	r.HandleFunc("/apods/date-range", h.GetPicturesInRange).Methods("GET")
}

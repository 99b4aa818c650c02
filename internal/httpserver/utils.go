package httpserver

import (
	"encoding/json"
	"net/http"

	"apodapi/internal/i18n"
	"apodapi/internal/logging"
	"apodapi/internal/models"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
)

// respondWithError writes the API error envelope from middleware, in the
// request language.
func respondWithError(w http.ResponseWriter, r *http.Request, code int, message, cause *goi18n.Message, data map[string]interface{}) {
	ctx := r.Context()
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(models.NewErrorResponse(i18n.Localize(ctx, message, data), i18n.Localize(ctx, cause, data), code)); err != nil {
		logging.Log.Errorf("Failed to encode error response: %v", err)
	}
}

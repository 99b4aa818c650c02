// internal/api/handlers/responses.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"apodapi/internal/i18n"
	"apodapi/internal/logging"
	"apodapi/internal/models"
	"apodapi/internal/search"
	"apodapi/internal/services"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
)

// ErrorResponse is the envelope of every API error.
type ErrorResponse = models.ErrorResponse

// NewErrorResponse builds an error envelope stamped with the current time.
func NewErrorResponse(message, cause string, code int) ErrorResponse {
	return models.NewErrorResponse(message, cause, code)
}

// respondWithError sends a JSON error envelope.
func respondWithError(w http.ResponseWriter, code int, message, cause string) {
	respondWithJSON(w, code, NewErrorResponse(message, cause, code))
}

// respondWithLocalizedError sends a JSON error envelope in the request language.
func respondWithLocalizedError(w http.ResponseWriter, r *http.Request, code int, message, cause *goi18n.Message, data map[string]interface{}) {
	ctx := r.Context()
	respondWithError(w, code, i18n.Localize(ctx, message, data), i18n.Localize(ctx, cause, data))
}

// validationData feeds the bounds quoted by validation causes.
var validationData = map[string]interface{}{
	"MaxPage":    search.MaxPage,
	"MaxPerPage": search.MaxPerPage,
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithServiceError handles the errors every endpoint shares: input
// validation and internal failures. It reports whether it wrote a response.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) bool {
	var vErr *search.ValidationError
	switch {
	case errors.As(err, &vErr):
		respondWithLocalizedError(w, r, http.StatusBadRequest,
			&goi18n.Message{ID: vErr.ID, Other: vErr.Message},
			&goi18n.Message{ID: vErr.ID + "Cause", Other: vErr.Cause},
			validationData)
	case errors.Is(err, services.ErrUpstream):
		logging.FromContext(r.Context()).Errorf("Upstream failure on %s: %v", r.URL.Path, err)
		respondWithLocalizedError(w, r, http.StatusInternalServerError, i18n.MsgInternalServerError, i18n.MsgUpstreamFailed, nil)
	case errors.Is(err, services.ErrStore):
		logging.FromContext(r.Context()).Errorf("Store failure on %s: %v", r.URL.Path, err)
		respondWithLocalizedError(w, r, http.StatusInternalServerError, i18n.MsgInternalServerError, i18n.MsgStoreFailed, nil)
	default:
		return false
	}
	return true
}

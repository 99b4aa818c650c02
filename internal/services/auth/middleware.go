// filepath: internal/services/auth/middleware.go
package auth

import (
	"encoding/json"
	"net/http"

	"apodapi/internal/i18n"
	"apodapi/internal/logging"
	"apodapi/internal/models"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
)

// HeaderAPIKey carries the ingest credential.
const HeaderAPIKey = "x-api-key"

// writeError sends a JSON error envelope in the request language.
func writeError(w http.ResponseWriter, r *http.Request, code int, message, cause *goi18n.Message) {
	ctx := r.Context()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.NewErrorResponse(i18n.Localize(ctx, message, nil), i18n.Localize(ctx, cause, nil), code))
}

// Middleware guards routes with a KeyVerifier.
type Middleware struct {
	Verifier KeyVerifier
}

// NewMiddleware creates a new instance of Middleware.
func NewMiddleware(verifier KeyVerifier) *Middleware {
	return &Middleware{Verifier: verifier}
}

// RequireAPIKey rejects requests whose x-api-key header does not verify.
func (m *Middleware) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(HeaderAPIKey)
		if err := m.Verifier.Verify(r.Context(), key); err != nil {
			logging.FromContext(r.Context()).Warnf("RequireAPIKey: rejected request from %s: %v", r.RemoteAddr, err)
			writeError(w, r, http.StatusUnauthorized, i18n.MsgUnauthorized, i18n.MsgInvalidAPIKey)
			return
		}
		next.ServeHTTP(w, r)
	})
}

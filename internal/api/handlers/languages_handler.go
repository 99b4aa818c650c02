// internal/api/handlers/languages_handler.go
package handlers

import (
	"net/http"

	"apodapi/internal/i18n"
)

// LanguageInfo describes one supported response language.
type LanguageInfo = i18n.LanguageInfo

// GetSupportedLanguages lists the languages error messages can be returned in.
// @Summary List supported languages
// @Description Languages selectable with ?lang= or Accept-Language. English is the fallback.
// @Tags Info
// @Produce json
// @Success 200 {array} LanguageInfo
// @Router /languages [get]
func GetSupportedLanguages(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, i18n.Languages())
}

// Package i18n picks the response language of a request and renders the
// error envelope texts in it.
package i18n

import (
	"context"
	"embed"
	"fmt"
	"net/http"

	"apodapi/internal/logging"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// QueryParam overrides the Accept-Language header when present.
const QueryParam = "lang"

//go:embed locales/*.toml
var localeFS embed.FS

// Supported lists the response languages. The first one is the fallback and
// needs no locale file: its texts are the default messages.
var Supported = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
	language.Spanish,
	language.French,
}

// fallback renders default messages for requests that never went through
// Middleware, such as handlers under test.
var fallback = goi18n.NewLocalizer(goi18n.NewBundle(language.English), language.English.String())

type localeKey struct{}

type locale struct {
	tag       language.Tag
	localizer *goi18n.Localizer
}

// Translator owns the message bundle and the language matcher.
type Translator struct {
	bundle  *goi18n.Bundle
	matcher language.Matcher
}

// NewTranslator loads the embedded locale files.
func NewTranslator() (*Translator, error) {
	bundle := goi18n.NewBundle(Supported[0])
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, tag := range Supported[1:] {
		path := fmt.Sprintf("locales/active.%s.toml", tag)
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	return &Translator{bundle: bundle, matcher: language.NewMatcher(Supported)}, nil
}

// Match returns the supported language closest to the given preferences.
// Each argument is a language tag or an Accept-Language value; earlier ones
// win. Unknown or empty input yields the fallback language.
func (t *Translator) Match(preferences ...string) language.Tag {
	_, i := language.MatchStrings(t.matcher, preferences...)
	return Supported[i]
}

// Middleware stores the request language in the context. ?lang= takes
// precedence over Accept-Language.
func (t *Translator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag := t.Match(r.URL.Query().Get(QueryParam), r.Header.Get("Accept-Language"))

		w.Header().Add("Vary", "Accept-Language")
		w.Header().Set("Content-Language", tag.String())

		ctx := context.WithValue(r.Context(), localeKey{}, &locale{
			tag:       tag,
			localizer: goi18n.NewLocalizer(t.bundle, tag.String()),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Language returns the language chosen for ctx.
func Language(ctx context.Context) language.Tag {
	if l, ok := ctx.Value(localeKey{}).(*locale); ok {
		return l.tag
	}
	return Supported[0]
}

// Localize renders msg in the request language. A missing translation falls
// back to msg itself.
func Localize(ctx context.Context, msg *goi18n.Message, data map[string]interface{}) string {
	localizer := fallback
	if l, ok := ctx.Value(localeKey{}).(*locale); ok {
		localizer = l.localizer
	}

	s, err := localizer.Localize(&goi18n.LocalizeConfig{DefaultMessage: msg, TemplateData: data})
	if err != nil {
		logging.FromContext(ctx).Debugf("Localize %s: %v", msg.ID, err)
	}
	if s == "" {
		return msg.Other
	}
	return s
}

// LanguageInfo describes one supported language.
type LanguageInfo struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
}

// Languages lists the supported languages with their English and native names.
func Languages() []LanguageInfo {
	names := display.English.Tags()
	out := make([]LanguageInfo, 0, len(Supported))
	for _, tag := range Supported {
		out = append(out, LanguageInfo{
			Code:       tag.String(),
			Name:       names.Name(tag),
			NativeName: display.Self.Name(tag),
		})
	}
	return out
}

package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/25x8/checkdigit/internal/checkdigit/i18n"
)

type contextKey string

const (
	// LangKey is the key for the resolved language in the request context
	LangKey contextKey = "lang"
	// Language-related constants
	langParam          = "lang"
	langCookieName     = "lang"
	langCookieLifetime = 365 * 24 * time.Hour
)

// LangConfig contains configuration for language resolution
type LangConfig struct {
	Default language.Tag
}

// LangMiddleware resolves the language of each request and stores it
// in the context. An explicit ?lang= choice is remembered in a cookie.
func LangMiddleware(langConfig *LangConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag, persist := extractLang(r, langConfig.Default)
			if persist {
				SetLangCookie(w, tag)
			}

			ctx := context.WithValue(r.Context(), LangKey, tag)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractLang picks the language from the query, a cookie or the
// Accept-Language header, in that order
func extractLang(r *http.Request, fallback language.Tag) (language.Tag, bool) {
	// Try from query first, ignoring languages without a catalog
	if query := r.URL.Query().Get(langParam); hasCatalog(query) {
		tag, _ := i18n.ParseTag(query)
		return tag, true
	}

	// Try from cookie
	if cookie, err := r.Cookie(langCookieName); err == nil {
		if tag, ok := i18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := r.Header.Get("Accept-Language"); accept != "" {
		return i18n.MatchAcceptLanguage(accept), false
	}

	return fallback, false
}

// hasCatalog reports whether the base language of value is one we
// translate to; only those choices are remembered
func hasCatalog(value string) bool {
	requested, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return false
	}
	base, _ := requested.Base()
	for _, tag := range i18n.Supported() {
		if b, _ := tag.Base(); b == base {
			return true
		}
	}
	return false
}

// SetLangCookie sets the language cookie
func SetLangCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     langCookieName,
		Value:    tag.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(langCookieLifetime.Seconds()),
	})
}

// GetLang extracts the language from request context
func GetLang(ctx context.Context) language.Tag {
	if tag, ok := ctx.Value(LangKey).(language.Tag); ok {
		return tag
	}
	return i18n.Default()
}

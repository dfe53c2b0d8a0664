package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/25x8/checkdigit/internal/checkdigit/logger"
)

func langHandler(got *language.Tag) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = GetLang(r.Context())
	})
}

func TestLangMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		cookie     string
		accept     string
		want       language.Tag
		wantCookie bool
	}{
		{"default", "/", "", "", language.English, false},
		{"query", "/?lang=ko", "", "", language.Korean, true},
		{"query beats cookie", "/?lang=en", "ko", "", language.English, true},
		{"cookie", "/", "ko", "en-US", language.Korean, false},
		{"accept language", "/", "", "ko-KR,ko;q=0.9", language.Korean, false},
		{"unsupported accept language", "/", "", "de-DE", language.English, false},
		{"bad query falls through", "/?lang=%21%21", "", "ko", language.Korean, false},
		{"regional query", "/?lang=ko-KR", "", "", language.Korean, true},
		{"unsupported query not remembered", "/?lang=de", "", "", language.English, false},
		{"unsupported query falls through", "/?lang=fr", "ko", "", language.Korean, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got language.Tag
			h := LangMiddleware(&LangConfig{Default: language.English})(langHandler(&got))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: langCookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, got)
			cookies := rec.Result().Cookies()
			if tt.wantCookie {
				require.Len(t, cookies, 1)
				assert.Equal(t, tt.want.String(), cookies[0].Value)
			} else {
				assert.Empty(t, cookies)
			}
		})
	}
}

func TestLangMiddlewareUsesConfiguredDefault(t *testing.T) {
	var got language.Tag
	h := LangMiddleware(&LangConfig{Default: language.Korean})(langHandler(&got))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, language.Korean, got)
}

func TestGetLangWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, language.English, GetLang(req.Context()))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := logger.New(logger.Config{Output: &buf})

	var sawLogger bool
	h := RequestLogger(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := logger.Ctx(r.Context())
		l.Info().Msg("inside")
		sawLogger = true
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/lcg", nil)
	req.Header.Set(headerRequestID, "req-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, sawLogger)
	assert.Equal(t, "req-1", rec.Header().Get(headerRequestID))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var done map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[1], &done))
	assert.Equal(t, "request completed", done["message"])
	assert.Equal(t, "req-1", done[logger.FieldRequestID])
	assert.Equal(t, "/api/lcg", done[logger.FieldPath])
	assert.Equal(t, float64(http.StatusTeapot), done[logger.FieldStatus])
}

func TestRequestLoggerGeneratesID(t *testing.T) {
	h := RequestLogger(logger.New(logger.Config{Level: "off"}))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, rec.Header().Get(headerRequestID), 36)
}

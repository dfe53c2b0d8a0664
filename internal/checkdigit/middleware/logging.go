package middleware

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/25x8/checkdigit/internal/checkdigit/logger"
)

const headerRequestID = "X-Request-ID"

// RequestLogger attaches a request scoped logger to the context and logs
// every completed request. The request id is taken from the X-Request-ID
// header, or a new uuid is generated, and echoed back in the response.
func RequestLogger(base zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := r.Header.Get(headerRequestID)
			if reqID == "" {
				reqID = uuid.New().String()
			}
			w.Header().Set(headerRequestID, reqID)

			child := base.With().
				Str(logger.FieldRequestID, reqID).
				Str(logger.FieldMethod, r.Method).
				Str(logger.FieldPath, r.URL.Path).
				Str(logger.FieldClientIP, clientIP(r)).
				Logger()

			ctx := logger.WithLogger(r.Context(), child)
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(ctx))

			event := child.Info()
			if rec.status >= http.StatusInternalServerError {
				event = child.Error()
			}
			event.
				Int(logger.FieldStatus, rec.status).
				Float64(logger.FieldLatency, float64(time.Since(start).Microseconds())/1000).
				Msg("request completed")
		})
	}
}

// statusRecorder wraps http.ResponseWriter to capture the status code
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not implement http.Hijacker")
	}
	return h.Hijack()
}

// clientIP returns the remote host. chi's RealIP has already applied
// X-Forwarded-For and X-Real-IP when it runs first.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

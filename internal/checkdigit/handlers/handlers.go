package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joomcode/errorx"

	"github.com/25x8/checkdigit/internal/checkdigit/i18n"
	"github.com/25x8/checkdigit/internal/checkdigit/logger"
	"github.com/25x8/checkdigit/internal/checkdigit/middleware"
	"github.com/25x8/checkdigit/internal/checkdigit/models"
	"github.com/25x8/checkdigit/internal/checkdigit/service"
)

// maxBodySize bounds request bodies; expressions are short
const maxBodySize = 64 << 10

// Handler handles all HTTP requests
type Handler struct {
	Toolkit *service.Toolkit
}

// NewHandler creates a new handler
func NewHandler(toolkit *service.Toolkit) *Handler {
	return &Handler{
		Toolkit: toolkit,
	}
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// GetDefaults returns the preset generator inputs
func (h *Handler) GetDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, service.Defaults())
}

// ParseExpression evaluates one arithmetic expression
func (h *Handler) ParseExpression(w http.ResponseWriter, r *http.Request) {
	var req models.ParseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v, err := h.Toolkit.ParseInteger(r.Context(), req.Expression)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ParseResponse{Value: v})
}

// GenerateLCG parses the generator fields and returns the sequence
func (h *Handler) GenerateLCG(w http.ResponseWriter, r *http.Request) {
	var req models.LCGRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	numbers, err := h.Toolkit.Generate(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.LCGResponse{Numbers: numbers})
}

// ValidateIdentifier runs the validator named by the kind URL parameter.
// An invalid identifier is a normal 200 response with valid=false.
func (h *Handler) ValidateIdentifier(w http.ResponseWriter, r *http.Request) {
	kind := models.Kind(chi.URLParam(r, "kind"))

	var req models.ValidateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.Toolkit.Validate(r.Context(), kind, req.Value)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res.Message = resultMessage(i18n.Printer(middleware.GetLang(r.Context())), res)

	writeJSON(w, http.StatusOK, res)
}

// decodeJSON reads the request body into dst, answering 400 on failure
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Bad request"})
		return false
	}
	return true
}

// writeError maps toolkit errors to status codes
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	lang := middleware.GetLang(r.Context())
	p := i18n.Printer(lang)
	resp := models.ErrorResponse{
		Error: p.Sprintf(i18n.KeyInputError, errorMessage(err)),
		Field: models.FieldOf(err),
	}

	l := logger.Ctx(r.Context())
	switch {
	case errorx.IsOfType(err, models.InvalidFormat), errorx.IsOfType(err, models.DivisionByZero):
		l.Debug().Err(err).Str(logger.FieldField, resp.Field).Str(logger.FieldLang, lang.String()).Msg("rejected input")
		writeJSON(w, http.StatusUnprocessableEntity, resp)
	case errorx.IsOfType(err, models.UnknownKind):
		writeJSON(w, http.StatusNotFound, resp)
	default:
		l.Error().Err(err).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Server error"})
	}
}

// errorMessage strips the errorx type prefix and properties
func errorMessage(err error) string {
	var e *errorx.Error
	if errors.As(err, &e) && e.Message() != "" {
		return e.Message()
	}
	return err.Error()
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

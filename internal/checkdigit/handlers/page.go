package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"math/big"
	"net/http"

	"golang.org/x/text/message"

	"github.com/25x8/checkdigit/internal/checkdigit/i18n"
	"github.com/25x8/checkdigit/internal/checkdigit/logger"
	"github.com/25x8/checkdigit/internal/checkdigit/middleware"
	"github.com/25x8/checkdigit/internal/checkdigit/models"
	"github.com/25x8/checkdigit/internal/checkdigit/service"
)

// Form tools
const (
	toolLCG    = "lcg"
	toolISBN10 = string(models.KindISBN10)
	toolISBN13 = string(models.KindISBN13)
	toolCard   = string(models.KindCard)
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("index.html").
	Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
	ParseFS(templateFS, "templates/index.html"))

// pageData is everything index.html renders
type pageData struct {
	Lang     string
	Tool     string
	T        func(key message.Reference, args ...interface{}) string
	LCG      models.LCGRequest
	MaxCount int
	Numbers  []*big.Int
	Sections []section
	Error    string
}

// section is one validator form
type section struct {
	Tool   string
	Title  string
	Value  string
	Result *models.ValidationResult
}

// Index renders the tool page with preset generator inputs
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data := h.newPageData(r)
	data.Tool = toolLCG
	h.render(w, r, http.StatusOK, data)
}

// Submit handles a form post from the tool page and renders the result
// in place, the way the desktop and web front ends used to
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	data := h.newPageData(r)
	data.Tool = r.PostForm.Get("tool")
	status := http.StatusOK
	p := i18n.Printer(middleware.GetLang(r.Context()))

	switch data.Tool {
	case toolLCG:
		data.LCG = models.LCGRequest{
			Seed:       r.PostForm.Get(models.FieldSeed),
			Multiplier: r.PostForm.Get(models.FieldMultiplier),
			Increment:  r.PostForm.Get(models.FieldIncrement),
			Modulus:    r.PostForm.Get(models.FieldModulus),
			Count:      r.PostForm.Get(models.FieldCount),
		}
		numbers, err := h.Toolkit.Generate(r.Context(), data.LCG)
		if err != nil {
			data.Error = formErrorMessage(p, err)
			status = http.StatusUnprocessableEntity
			break
		}
		data.Numbers = numbers
	case toolISBN10, toolISBN13, toolCard:
		value := r.PostForm.Get("value")
		res, err := h.Toolkit.Validate(r.Context(), models.Kind(data.Tool), value)
		if err != nil {
			data.Error = formErrorMessage(p, err)
			status = http.StatusUnprocessableEntity
			break
		}
		res.Message = resultMessage(p, res)
		for i := range data.Sections {
			if data.Sections[i].Tool == data.Tool {
				data.Sections[i].Value = value
				data.Sections[i].Result = &res
			}
		}
	default:
		http.Error(w, "Unknown tool", http.StatusBadRequest)
		return
	}

	h.render(w, r, status, data)
}

func (h *Handler) newPageData(r *http.Request) pageData {
	tag := middleware.GetLang(r.Context())
	p := i18n.Printer(tag)
	return pageData{
		Lang:     tag.String(),
		T:        p.Sprintf,
		LCG:      service.Defaults(),
		MaxCount: h.Toolkit.MaxCount(),
		Sections: []section{
			{Tool: toolISBN10, Title: p.Sprintf(i18n.KeyISBN10Tab)},
			{Tool: toolISBN13, Title: p.Sprintf(i18n.KeyISBN13Tab)},
			{Tool: toolCard, Title: p.Sprintf(i18n.KeyCardTab)},
		},
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		l := logger.Ctx(r.Context())
		l.Error().Err(err).Msg("render page")
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// resultMessage is the localized verdict for one validation
func resultMessage(p *message.Printer, res models.ValidationResult) string {
	var key string
	switch res.Kind {
	case models.KindISBN10:
		key = pick(res.Valid, i18n.KeyISBN10Valid, i18n.KeyISBN10Invalid)
	case models.KindISBN13:
		key = pick(res.Valid, i18n.KeyISBN13Valid, i18n.KeyISBN13Invalid)
	default:
		key = pick(res.Valid, i18n.KeyCardValid, i18n.KeyCardInvalid)
	}
	return p.Sprintf(key)
}

func formErrorMessage(p *message.Printer, err error) string {
	if field := models.FieldOf(err); field != "" && field != models.FieldExpression {
		return p.Sprintf(i18n.KeyFieldInputError, field, errorMessage(err))
	}
	return p.Sprintf(i18n.KeyInputError, errorMessage(err))
}

func pick(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}

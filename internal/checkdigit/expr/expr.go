// Package expr evaluates integer arithmetic typed into a text field.
//
// The grammar is closed: integer literals, + - * / ** and parentheses,
// with ^ accepted as a spelling of **. There are no names, calls or
// attribute access, so nothing but arithmetic can ever be evaluated.
// Values are exact rationals while evaluating; the final result must be
// an integer.
package expr

import (
	"math/big"
	"strings"

	"github.com/25x8/checkdigit/internal/checkdigit/models"
)

const (
	// MaxInputLength bounds the size of an expression in bytes
	MaxInputLength = 1024
	// MaxDepth bounds parenthesis and unary operator nesting
	MaxDepth = 64
	// MaxBits bounds the size of any intermediate numerator or denominator
	MaxBits = 8192
)

// ParseInteger evaluates text and returns it as an integer.
// It fails with models.InvalidFormat when text is not a well formed
// expression or does not evaluate to a whole number.
func ParseInteger(text string) (*big.Int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, models.InvalidFormat.New("empty input").
			WithProperty(models.PropertyInput, text)
	}
	if len(s) > MaxInputLength {
		return nil, models.InvalidFormat.New("input longer than %d bytes", MaxInputLength).
			WithProperty(models.PropertyInput, s)
	}

	v, err := Eval(s)
	if err != nil {
		return nil, err
	}
	if !v.IsInt() {
		return nil, models.InvalidFormat.New("%s is not an integer", v.RatString()).
			WithProperty(models.PropertyInput, s)
	}
	return new(big.Int).Set(v.Num()), nil
}

// Eval evaluates s exactly. The result may be fractional.
func Eval(s string) (*big.Rat, error) {
	tokens, err := tokenize(s)
	if err != nil {
		return nil, models.WithInput(err, s)
	}
	p := &parser{tokens: tokens}
	v, err := p.parseExpr()
	if err != nil {
		return nil, models.WithInput(err, s)
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, models.WithInput(syntaxError(t.pos, "unexpected %s", t.kind), s)
	}
	return v, nil
}

func syntaxError(pos int, format string, args ...interface{}) error {
	return models.InvalidFormat.New(format, args...).
		WithProperty(models.PropertyPosition, pos)
}

package service

import (
	"context"
	"math/big"

	"github.com/25x8/checkdigit/internal/checkdigit/expr"
	"github.com/25x8/checkdigit/internal/checkdigit/lcg"
	"github.com/25x8/checkdigit/internal/checkdigit/logger"
	"github.com/25x8/checkdigit/internal/checkdigit/models"
	"github.com/25x8/checkdigit/internal/checkdigit/utils"
)

// DefaultMaxCount bounds how many values one request may generate
const DefaultMaxCount = 1000

// Toolkit is the single entry point front ends use to reach the
// parser, the generator and the validators. It holds no mutable state
// and is safe for concurrent use.
type Toolkit struct {
	maxCount int
}

// NewToolkit creates a toolkit. A non-positive maxCount selects DefaultMaxCount.
func NewToolkit(maxCount int) *Toolkit {
	if maxCount < 1 {
		maxCount = DefaultMaxCount
	}
	return &Toolkit{maxCount: maxCount}
}

// MaxCount returns the generation bound
func (t *Toolkit) MaxCount() int {
	return t.maxCount
}

// Defaults returns generator inputs that produce a classic sequence
// (the constants of the C standard library's rand)
func Defaults() models.LCGRequest {
	return models.LCGRequest{
		Seed:       "1",
		Multiplier: "1103515245",
		Increment:  "12345",
		Modulus:    "2^31",
		Count:      "10",
	}
}

// ParseInteger evaluates one expression
func (t *Toolkit) ParseInteger(ctx context.Context, text string) (*big.Int, error) {
	v, err := expr.ParseInteger(text)
	if err != nil {
		return nil, models.WithField(err, models.FieldExpression)
	}
	return v, nil
}

// ParseParameters turns the raw generator fields into parameters.
// The first failing field is reported through models.PropertyField.
func (t *Toolkit) ParseParameters(req models.LCGRequest) (models.LCGParameters, error) {
	var p models.LCGParameters

	fields := []struct {
		name string
		text string
		dst  **big.Int
	}{
		{models.FieldSeed, req.Seed, &p.Seed},
		{models.FieldMultiplier, req.Multiplier, &p.Multiplier},
		{models.FieldIncrement, req.Increment, &p.Increment},
		{models.FieldModulus, req.Modulus, &p.Modulus},
	}
	for _, f := range fields {
		v, err := expr.ParseInteger(f.text)
		if err != nil {
			return models.LCGParameters{}, models.WithField(err, f.name)
		}
		*f.dst = v
	}

	count, err := expr.ParseInteger(req.Count)
	if err != nil {
		return models.LCGParameters{}, models.WithField(err, models.FieldCount)
	}
	if !count.IsInt64() || count.Int64() < 1 || count.Int64() > int64(t.maxCount) {
		return models.LCGParameters{}, models.InvalidFormat.
			New("count must be between 1 and %d", t.maxCount).
			WithProperty(models.PropertyField, models.FieldCount).
			WithProperty(models.PropertyInput, req.Count)
	}
	p.Count = int(count.Int64())

	return p, nil
}

// Generate parses req and runs the generator
func (t *Toolkit) Generate(ctx context.Context, req models.LCGRequest) ([]*big.Int, error) {
	p, err := t.ParseParameters(req)
	if err != nil {
		return nil, err
	}

	numbers, err := lcg.GenerateParams(p)
	if err != nil {
		return nil, models.WithField(err, models.FieldModulus)
	}

	l := logger.Ctx(ctx)
	l.Debug().
		Int(logger.FieldCount, len(numbers)).
		Str(models.FieldModulus, p.Modulus.String()).
		Msg("sequence generated")

	return numbers, nil
}

// Validate runs the validator for kind. Malformed identifiers are not
// errors, they give Valid == false. Only an unknown kind fails.
func (t *Toolkit) Validate(ctx context.Context, kind models.Kind, text string) (models.ValidationResult, error) {
	res := models.ValidationResult{Kind: kind}

	switch kind {
	case models.KindISBN10:
		res.Normalized = utils.NormalizeISBN10(text)
		res.Valid = utils.IsValidISBN10(text)
		if len(res.Normalized) == utils.ISBN10Length {
			if c, ok := utils.ISBN10CheckDigit(res.Normalized[:utils.ISBN10Length-1]); ok {
				res.ExpectedCheck = string(c)
			}
		}
	case models.KindISBN13:
		res.Normalized = utils.NormalizeISBN13(text)
		res.Valid = utils.IsValidISBN13(text)
		if len(res.Normalized) == utils.ISBN13Length {
			if c, ok := utils.ISBN13CheckDigit(res.Normalized[:utils.ISBN13Length-1]); ok {
				res.ExpectedCheck = string(c)
			}
		}
	case models.KindCard:
		res.Normalized = utils.NormalizeCard(text)
		res.Valid = utils.IsValidCreditCard(text)
		n := len(res.Normalized)
		if n >= utils.CardMinLength && n <= utils.CardMaxLength {
			if c, ok := utils.LuhnCheckDigit(res.Normalized[:n-1]); ok {
				res.ExpectedCheck = string(c)
			}
		}
	default:
		return models.ValidationResult{}, models.UnknownKind.New("unknown identifier kind %q", kind)
	}

	l := logger.Ctx(ctx)
	l.Debug().
		Str(logger.FieldKind, string(kind)).
		Bool("valid", res.Valid).
		Msg("identifier validated")

	return res, nil
}

package models

import (
	"github.com/joomcode/errorx"
)

// Errors namespace for the toolkit
var (
	Errors = errorx.NewNamespace("checkdigit")

	// InvalidFormat is returned when text cannot be turned into an integer
	InvalidFormat = Errors.NewType("invalid_format")
	// DivisionByZero is returned when the generator modulus is zero
	DivisionByZero = Errors.NewType("division_by_zero")
	// UnknownKind is returned for an identifier scheme nobody validates
	UnknownKind = Errors.NewType("unknown_kind")
)

// Error properties
var (
	// PropertyField names the input field that failed
	PropertyField = errorx.RegisterProperty("field")
	// PropertyPosition is the byte offset where parsing stopped
	PropertyPosition = errorx.RegisterProperty("position")
	// PropertyInput is the text that was being parsed
	PropertyInput = errorx.RegisterProperty("input")
)

// WithField tags err with the name of the input it came from.
// Errors that are not errorx errors are returned unchanged.
func WithField(err error, field string) error {
	return withNewProperty(err, PropertyField, field)
}

// WithInput attaches the text being parsed, unless already set
func WithInput(err error, input string) error {
	return withNewProperty(err, PropertyInput, input)
}

func withNewProperty(err error, p errorx.Property, v interface{}) error {
	e := errorx.Cast(err)
	if e == nil {
		return err
	}
	if _, ok := e.Property(p); ok {
		return e
	}
	return e.WithProperty(p, v)
}

// FieldOf returns the field tag attached by WithField
func FieldOf(err error) string {
	e := errorx.Cast(err)
	if e == nil {
		return ""
	}
	v, ok := e.Property(PropertyField)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

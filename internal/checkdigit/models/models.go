package models

import (
	"math/big"
)

// Kind identifies an identifier scheme
type Kind string

// Supported identifier schemes
const (
	KindISBN10 Kind = "isbn10"
	KindISBN13 Kind = "isbn13"
	KindCard   Kind = "card"
)

// Kinds lists the schemes in display order
var Kinds = []Kind{KindISBN10, KindISBN13, KindCard}

// LCGParameters holds already parsed generator inputs
type LCGParameters struct {
	Seed       *big.Int
	Multiplier *big.Int
	Increment  *big.Int
	Modulus    *big.Int
	Count      int
}

// LCGRequest is the raw text a front end collects for one generation
type LCGRequest struct {
	Seed       string `json:"seed"`
	Multiplier string `json:"multiplier"`
	Increment  string `json:"increment"`
	Modulus    string `json:"modulus"`
	Count      string `json:"count"`
}

// LCGResponse is the generated sequence
type LCGResponse struct {
	Numbers []*big.Int `json:"numbers"`
}

// ParseRequest carries one expression
type ParseRequest struct {
	Expression string `json:"expression"`
}

// ParseResponse carries the evaluated integer
type ParseResponse struct {
	Value *big.Int `json:"value"`
}

// ValidateRequest carries one identifier
type ValidateRequest struct {
	Value string `json:"value"`
}

// ValidationResult describes one validator run
type ValidationResult struct {
	Kind       Kind   `json:"kind"`
	Valid      bool   `json:"valid"`
	Normalized string `json:"normalized"`
	// ExpectedCheck is the check character the payload digits call for.
	// Empty when the input is not well formed.
	ExpectedCheck string `json:"expected_check,omitempty"`
	Message       string `json:"message,omitempty"`
}

// ErrorResponse is the JSON body for failed requests
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// Field names used to tag parse errors
const (
	FieldExpression = "expression"
	FieldSeed       = "seed"
	FieldMultiplier = "multiplier"
	FieldIncrement  = "increment"
	FieldModulus    = "modulus"
	FieldCount      = "count"
)

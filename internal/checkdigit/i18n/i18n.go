// Package i18n holds the user facing strings of the web front end.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys
const (
	KeyTitle           = "Check Digit Validator + Linear Congruential Generator"
	KeyLCGTab          = "Linear congruential generator"
	KeyISBN10Tab       = "ISBN-10 check"
	KeyISBN13Tab       = "ISBN-13 check"
	KeyCardTab         = "Credit card check"
	KeySeed            = "Seed (x₀)"
	KeyMultiplier      = "Multiplier (a)"
	KeyIncrement       = "Increment (c)"
	KeyModulus         = "Modulus (m)"
	KeyCount           = "Count"
	KeyGenerate        = "Generate"
	KeyValidate        = "Validate"
	KeyISBN10Valid     = "✅ Valid ISBN-10!"
	KeyISBN10Invalid   = "❌ Invalid ISBN-10!"
	KeyISBN13Valid     = "✅ Valid ISBN-13!"
	KeyISBN13Invalid   = "❌ Invalid ISBN-13!"
	KeyCardValid       = "✅ Valid credit card number!"
	KeyCardInvalid     = "❌ Invalid credit card number!"
	KeyExpectedCheck   = "Expected check character: %s"
	KeyInputError      = "Input error! %s"
	KeyFieldInputError = "Input error in %s! %s"
)

var supported = []language.Tag{
	language.English,
	language.Korean,
}

var matcher = language.NewMatcher(supported)

// Supported returns the languages with a full catalog
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Default is used when nothing else matches
func Default() language.Tag {
	return language.English
}

// Match picks the best supported tag for the given preferences
func Match(prefs ...language.Tag) language.Tag {
	if len(prefs) == 0 {
		return Default()
	}
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return Default()
	}
	return supported[idx]
}

// ParseTag parses a language value such as "ko" or "en-US" and matches it
// against the supported set. The bool reports whether the value parsed.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return Default(), false
	}
	return Match(tag), true
}

// MatchAcceptLanguage resolves an Accept-Language header value
func MatchAcceptLanguage(header string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return Default()
	}
	return Match(tags...)
}

// Printer returns a printer for tag backed by the message catalog
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(Match(tag))
}

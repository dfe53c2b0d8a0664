package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidISBN10(t *testing.T) {
	tests := []struct {
		name string
		isbn string
		want bool
	}{
		{"plain", "0306406152", true},
		{"sequential digits", "1234567890", false},
		{"hyphenated", "0-306-40615-2", true},
		{"check character X", "080442957X", true},
		{"lower case x", "0-8044-2957-x", true},
		{"X where a digit belongs", "030640615X", false},
		{"X in the payload", "X306406152", false},
		{"too long", "03064061521", false},
		{"too short", "030640615", false},
		{"letters", "ABCDEFGHIJ", false},
		{"spaces are not stripped", "0 306 40615 2", false},
		{"empty", "", false},
		{"only hyphens", "----------", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidISBN10(tt.isbn))
		})
	}
}

func TestIsValidISBN13(t *testing.T) {
	tests := []struct {
		name string
		isbn string
		want bool
	}{
		{"plain", "9780306406157", true},
		{"sequential digits", "9781234567890", false},
		{"hyphenated", "978-0-306-40615-7", true},
		{"another book", "978-1-4028-9462-6", true},
		{"X is not allowed", "978030640615X", false},
		{"too long", "97803064061570", false},
		{"too short", "978030640615", false},
		{"letters", "978030640615a", false},
		{"empty", "", false},
		{"spaces are not stripped", "978 0306406157", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidISBN13(tt.isbn))
		})
	}
}

func TestISBNCheckDigits(t *testing.T) {
	c, ok := ISBN10CheckDigit("030640615")
	assert.True(t, ok)
	assert.Equal(t, "2", string(c))

	c, ok = ISBN10CheckDigit("080442957")
	assert.True(t, ok)
	assert.Equal(t, "X", string(c))

	_, ok = ISBN10CheckDigit("03064061")
	assert.False(t, ok)
	_, ok = ISBN10CheckDigit("03064061X")
	assert.False(t, ok)

	c, ok = ISBN13CheckDigit("978030640615")
	assert.True(t, ok)
	assert.Equal(t, "7", string(c))

	_, ok = ISBN13CheckDigit("97803064061")
	assert.False(t, ok)
}

// Every payload completed with its computed check character must validate.
func TestISBNCheckDigitsRoundTrip(t *testing.T) {
	for i := 0; i < 1000; i++ {
		p10 := digits(i*7919, 9)
		c10, ok := ISBN10CheckDigit(p10)
		assert.True(t, ok)
		assert.True(t, IsValidISBN10(p10+string(c10)), p10)

		p13 := digits(i*104729, 12)
		c13, ok := ISBN13CheckDigit(p13)
		assert.True(t, ok)
		assert.True(t, IsValidISBN13(p13+string(c13)), p13)
	}
}

func TestValidatorsRejectWrongLengths(t *testing.T) {
	for n := 0; n <= 25; n++ {
		s := strings.Repeat("0", n)
		if n != ISBN10Length {
			assert.False(t, IsValidISBN10(s), "length %d", n)
		}
		if n != ISBN13Length {
			assert.False(t, IsValidISBN13(s), "length %d", n)
		}
		if n < CardMinLength || n > CardMaxLength {
			assert.False(t, IsValidCreditCard(s), "length %d", n)
		}
	}
}

func TestNormalizeISBNIdempotent(t *testing.T) {
	for _, in := range []string{"0-8044-2957-x", "978-0-306-40615-7", "1234567890", "-x-"} {
		once10 := NormalizeISBN10(in)
		assert.Equal(t, once10, NormalizeISBN10(once10))
		assert.Equal(t, IsValidISBN10(in), IsValidISBN10(once10))

		once13 := NormalizeISBN13(in)
		assert.Equal(t, once13, NormalizeISBN13(once13))
		assert.Equal(t, IsValidISBN13(in), IsValidISBN13(once13))
	}
}

func digits(seed, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + seed%10))
		seed = seed/10 + i*31
	}
	return b.String()
}

package utils

import (
	"strings"
)

// ISBN lengths after hyphens are removed
const (
	ISBN10Length = 10
	ISBN13Length = 13
)

// NormalizeISBN10 removes hyphens and upper-cases a trailing x
func NormalizeISBN10(isbn string) string {
	return strings.ToUpper(strings.ReplaceAll(isbn, "-", ""))
}

// NormalizeISBN13 removes hyphens
func NormalizeISBN13(isbn string) string {
	return strings.ReplaceAll(isbn, "-", "")
}

// IsValidISBN10 checks an ISBN-10. The weighted sum of the first nine
// digits (weights 1..9) plus ten times the check character must be a
// multiple of 11. The check character may be X, meaning 10.
func IsValidISBN10(isbn string) bool {
	isbn = NormalizeISBN10(isbn)
	if len(isbn) != ISBN10Length {
		return false
	}

	total, ok := isbn10Sum(isbn[:9])
	if !ok {
		return false
	}

	last, ok := isbn10Value(isbn[9])
	if !ok {
		return false
	}
	total += 10 * last

	return total%11 == 0
}

// ISBN10CheckDigit returns the check character for nine payload digits
func ISBN10CheckDigit(payload string) (byte, bool) {
	if len(payload) != ISBN10Length-1 {
		return 0, false
	}
	total, ok := isbn10Sum(payload)
	if !ok {
		return 0, false
	}
	// 10*v ≡ -v (mod 11), so v must equal total mod 11
	v := total % 11
	if v == 10 {
		return 'X', true
	}
	return byte('0' + v), true
}

func isbn10Sum(payload string) (int, bool) {
	total := 0
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		total += (i + 1) * int(c-'0')
	}
	return total, true
}

func isbn10Value(c byte) (int, bool) {
	switch {
	case c == 'X':
		return 10, true
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	default:
		return 0, false
	}
}

// IsValidISBN13 checks an ISBN-13: digits weighted 1,3,1,3... and the
// last digit must bring the sum to a multiple of ten.
func IsValidISBN13(isbn string) bool {
	isbn = NormalizeISBN13(isbn)
	if len(isbn) != ISBN13Length || !IsNumeric(isbn) {
		return false
	}
	check, _ := ISBN13CheckDigit(isbn[:12])
	return check == isbn[12]
}

// ISBN13CheckDigit returns the check digit for twelve payload digits
func ISBN13CheckDigit(payload string) (byte, bool) {
	if len(payload) != ISBN13Length-1 || !IsNumeric(payload) {
		return 0, false
	}
	total := 0
	for i := 0; i < len(payload); i++ {
		digit := int(payload[i] - '0')
		if i%2 == 1 {
			digit *= 3
		}
		total += digit
	}
	return byte('0' + (10-total%10)%10), true
}

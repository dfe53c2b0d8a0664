package utils

import (
	"strings"
)

// Card number length bounds, inclusive
const (
	CardMinLength = 12
	CardMaxLength = 19
)

// NormalizeCard removes the spaces people type between digit groups
func NormalizeCard(number string) string {
	return strings.ReplaceAll(number, " ", "")
}

// IsValidCreditCard checks a card number with the Luhn algorithm.
// Spaces are ignored; anything else that is not a digit makes it invalid.
func IsValidCreditCard(number string) bool {
	number = NormalizeCard(number)
	if len(number) < CardMinLength || len(number) > CardMaxLength {
		return false
	}
	return ValidateLuhn(number)
}

// ValidateLuhn checks if a string passes the Luhn algorithm check
func ValidateLuhn(number string) bool {
	if number == "" || !IsNumeric(number) {
		return false
	}
	return luhnSum(number, false)%10 == 0
}

// LuhnCheckDigit returns the digit that makes payload + digit pass the Luhn check
func LuhnCheckDigit(payload string) (byte, bool) {
	if payload == "" || !IsNumeric(payload) {
		return 0, false
	}
	sum := luhnSum(payload, true)
	return byte('0' + (10-sum%10)%10), true
}

// luhnSum walks the digits from the right, doubling every second one.
// With doubleFirst the rightmost digit is doubled too, which is what a
// payload still missing its check digit needs.
func luhnSum(number string, doubleFirst bool) int {
	sum := 0
	double := doubleFirst
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum
}

// IsNumeric checks if a string contains only ASCII digits
func IsNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

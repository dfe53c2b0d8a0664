package expr

import (
	"fmt"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPow
	tokLParen
	tokRParen
)

var tokenNames = map[tokenKind]string{
	tokEOF:    "end of input",
	tokNumber: "number",
	tokPlus:   "'+'",
	tokMinus:  "'-'",
	tokStar:   "'*'",
	tokSlash:  "'/'",
	tokPow:    "'**'",
	tokLParen: "'('",
	tokRParen: "')'",
}

func (k tokenKind) String() string {
	if s, ok := tokenNames[k]; ok {
		return s
	}
	return fmt.Sprintf("token(%d)", int(k))
}

type token struct {
	kind tokenKind
	text string
	pos  int
}

// tokenize splits s into tokens. '^' is read as the power operator.
// Anything that is not a digit, an operator, a parenthesis or blank
// is rejected, so names and calls never reach the parser.
func tokenize(s string) ([]token, error) {
	tokens := make([]token, 0, len(s)/2+1)
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c >= '0' && c <= '9':
			start := i
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				i++
			}
			lit := s[start:i]
			if !validLiteral(lit) {
				return nil, syntaxError(start, "leading zeros in integer literal %q", lit)
			}
			tokens = append(tokens, token{kind: tokNumber, text: lit, pos: start})
		case c == '*':
			if i+1 < len(s) && s[i+1] == '*' {
				tokens = append(tokens, token{kind: tokPow, text: "**", pos: i})
				i += 2
				continue
			}
			tokens = append(tokens, token{kind: tokStar, text: "*", pos: i})
			i++
		case c == '^':
			tokens = append(tokens, token{kind: tokPow, text: "^", pos: i})
			i++
		case c == '+':
			tokens = append(tokens, token{kind: tokPlus, text: "+", pos: i})
			i++
		case c == '-':
			tokens = append(tokens, token{kind: tokMinus, text: "-", pos: i})
			i++
		case c == '/':
			tokens = append(tokens, token{kind: tokSlash, text: "/", pos: i})
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokLParen, text: "(", pos: i})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokRParen, text: ")", pos: i})
			i++
		default:
			r, _ := utf8.DecodeRuneInString(s[i:])
			return nil, syntaxError(i, "unexpected character %q", r)
		}
	}
	tokens = append(tokens, token{kind: tokEOF, pos: len(s)})
	return tokens, nil
}

// validLiteral rejects "07" style literals but accepts "0" and "000".
func validLiteral(lit string) bool {
	if len(lit) < 2 || lit[0] != '0' {
		return true
	}
	for i := 1; i < len(lit); i++ {
		if lit[i] != '0' {
			return false
		}
	}
	return true
}

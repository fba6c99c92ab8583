package tokenizer

import "errors"

// Sentinel errors
var (
	ErrUnterminatedQuote  = errors.New("unterminated quoted identifier")
	ErrUnterminatedString = errors.New("unterminated string literal")
)

// TokenType represents the type of a token
type TokenType int

const (
	// Basic tokens
	EOF TokenType = iota
	WHITESPACE
	IDENTIFIER        // bare identifier or unknown word
	QUOTED_IDENTIFIER // `quoted` or "quoted" identifier, quotes stripped
	KEYWORD           // reserved SQL word from the dialect set
	STRING            // 'string literal'
	NUMBER            // numeric literal

	// Punctuation
	OPENED_PARENS // (
	CLOSED_PARENS // )
	COMMA         // ,
	DOT           // .
	STAR          // *

	// Operators (=, <>, <=, +, -, ||, ...)
	OPERATOR

	// Query parameter marker (:param_name)
	PARAM

	// Others
	OTHER
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WHITESPACE:
		return "WHITESPACE"
	case IDENTIFIER:
		return "IDENTIFIER"
	case QUOTED_IDENTIFIER:
		return "QUOTED_IDENTIFIER"
	case KEYWORD:
		return "KEYWORD"
	case STRING:
		return "STRING"
	case NUMBER:
		return "NUMBER"
	case OPENED_PARENS:
		return "OPENED_PARENS"
	case CLOSED_PARENS:
		return "CLOSED_PARENS"
	case COMMA:
		return "COMMA"
	case DOT:
		return "DOT"
	case STAR:
		return "STAR"
	case OPERATOR:
		return "OPERATOR"
	case PARAM:
		return "PARAM"
	case OTHER:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// Token represents a single token in one dashboard query expression.
// Value holds the original spelling except for quoted identifiers, where the
// surrounding quote characters are stripped and the inner text is kept as-is.
type Token struct {
	Type   TokenType
	Value  string
	Offset int
}

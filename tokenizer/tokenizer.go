package tokenizer

import (
	"fmt"
	"strings"
	"unicode"
)

// ExprTokenizer splits one dashboard query expression into a flat token
// stream. Dashboard exports contain partial, sometimes malformed SQL
// fragments, so the tokenizer never rejects input outright: All returns every
// token it could produce together with the first recovery that was needed.
type ExprTokenizer struct {
	input   string
	dialect *Dialect
	options Options
}

// Options are options for the tokenizer
type Options struct {
	SkipWhitespace bool
}

// New creates a new ExprTokenizer
func New(input string, dialect *Dialect, options ...Options) *ExprTokenizer {
	opts := Options{}
	if len(options) > 0 {
		opts = options[0]
	}

	if dialect == nil {
		dialect = NewDialect()
	}

	return &ExprTokenizer{
		input:   input,
		dialect: dialect,
		options: opts,
	}
}

// All returns all tokens. On malformed input (unterminated quoting) the
// partial token covering the rest of the input is still emitted and the
// error is returned alongside the usable tokens.
func (t *ExprTokenizer) All() ([]Token, error) {
	walker := &tokenWalker{
		input:   []rune(t.input),
		dialect: t.dialect,
	}

	tokens := make([]Token, 0, 16)

	var firstErr error

	for {
		token, err := walker.next()
		if err != nil && firstErr == nil {
			firstErr = err
		}

		if token.Type == EOF {
			break
		}

		if t.options.SkipWhitespace && token.Type == WHITESPACE {
			continue
		}

		tokens = append(tokens, token)
	}

	return tokens, firstErr
}

// Internal tokenizer implementation
type tokenWalker struct {
	input    []rune
	position int
	dialect  *Dialect
}

// current returns the rune at the cursor, or 0 at end of input
func (w *tokenWalker) current() rune {
	if w.position >= len(w.input) {
		return 0
	}

	return w.input[w.position]
}

// peek looks ahead at the next rune
func (w *tokenWalker) peek() rune {
	if w.position+1 >= len(w.input) {
		return 0
	}

	return w.input[w.position+1]
}

func (w *tokenWalker) next() (Token, error) {
	switch c := w.current(); {
	case c == 0:
		return Token{Type: EOF, Offset: w.position}, nil
	case unicode.IsSpace(c):
		return w.readWhitespace(), nil
	case c == '(':
		return w.readSingle(OPENED_PARENS), nil
	case c == ')':
		return w.readSingle(CLOSED_PARENS), nil
	case c == ',':
		return w.readSingle(COMMA), nil
	case c == '.':
		return w.readSingle(DOT), nil
	case c == '*':
		return w.readSingle(STAR), nil
	case c == '`' || c == '"':
		return w.readQuotedIdentifier(c)
	case c == '\'':
		return w.readString()
	case c == ':' && isWordStart(w.peek()):
		return w.readParam(), nil
	case isOperatorRune(c):
		return w.readOperator(), nil
	case unicode.IsDigit(c):
		return w.readNumber(), nil
	case isWordStart(c):
		return w.readWord(), nil
	default:
		return w.readSingle(OTHER), nil
	}
}

func (w *tokenWalker) readSingle(tokenType TokenType) Token {
	token := Token{
		Type:   tokenType,
		Value:  string(w.current()),
		Offset: w.position,
	}
	w.position++

	return token
}

func (w *tokenWalker) readWhitespace() Token {
	start := w.position
	for w.position < len(w.input) && unicode.IsSpace(w.current()) {
		w.position++
	}

	return Token{
		Type:   WHITESPACE,
		Value:  string(w.input[start:w.position]),
		Offset: start,
	}
}

// readWord reads identifiers and keywords
func (w *tokenWalker) readWord() Token {
	start := w.position
	for w.position < len(w.input) && isWordPart(w.current()) {
		w.position++
	}

	word := string(w.input[start:w.position])

	tokenType := IDENTIFIER
	if w.dialect.IsKeyword(word) {
		tokenType = KEYWORD
	}

	return Token{
		Type:   tokenType,
		Value:  word,
		Offset: start,
	}
}

// readQuotedIdentifier reads a backtick or double-quote protected identifier.
// The protected text is one atomic token even when it contains whitespace or
// punctuation; the quote characters themselves are stripped from Value.
// A doubled quote character inside the identifier is an escape.
func (w *tokenWalker) readQuotedIdentifier(delimiter rune) (Token, error) {
	start := w.position
	w.position++ // opening quote

	var builder strings.Builder

	for w.position < len(w.input) {
		c := w.current()
		if c == delimiter {
			if w.peek() == delimiter {
				builder.WriteRune(delimiter)
				w.position += 2

				continue
			}

			w.position++ // closing quote

			return Token{
				Type:   QUOTED_IDENTIFIER,
				Value:  builder.String(),
				Offset: start,
			}, nil
		}

		builder.WriteRune(c)
		w.position++
	}

	// Unterminated: degrade to a token covering the rest of the input
	return Token{
			Type:   QUOTED_IDENTIFIER,
			Value:  builder.String(),
			Offset: start,
		}, fmt.Errorf("%w: %c at offset %d", ErrUnterminatedQuote, delimiter, start)
}

// readString reads a single-quoted string literal, quotes included in Value
func (w *tokenWalker) readString() (Token, error) {
	start := w.position
	w.position++ // opening quote

	var builder strings.Builder

	builder.WriteRune('\'')

	for w.position < len(w.input) {
		c := w.current()
		if c == '\\' {
			builder.WriteRune(c)
			w.position++

			if w.position < len(w.input) {
				builder.WriteRune(w.current())
				w.position++
			}

			continue
		}

		if c == '\'' {
			if w.peek() == '\'' {
				builder.WriteString("''")
				w.position += 2

				continue
			}

			builder.WriteRune('\'')
			w.position++

			return Token{Type: STRING, Value: builder.String(), Offset: start}, nil
		}

		builder.WriteRune(c)
		w.position++
	}

	return Token{
			Type:   STRING,
			Value:  builder.String(),
			Offset: start,
		}, fmt.Errorf("%w at offset %d", ErrUnterminatedString, start)
}

// readNumber reads numeric literals including decimals and exponents
func (w *tokenWalker) readNumber() Token {
	start := w.position
	for w.position < len(w.input) && unicode.IsDigit(w.current()) {
		w.position++
	}

	if w.current() == '.' && unicode.IsDigit(w.peek()) {
		w.position++
		for w.position < len(w.input) && unicode.IsDigit(w.current()) {
			w.position++
		}
	}

	if w.current() == 'e' || w.current() == 'E' {
		mark := w.position
		w.position++

		if w.current() == '+' || w.current() == '-' {
			w.position++
		}

		if unicode.IsDigit(w.current()) {
			for w.position < len(w.input) && unicode.IsDigit(w.current()) {
				w.position++
			}
		} else {
			// not an exponent after all
			w.position = mark
		}
	}

	return Token{
		Type:   NUMBER,
		Value:  string(w.input[start:w.position]),
		Offset: start,
	}
}

// readParam reads a :name query parameter marker used by parameterized
// dashboard filters. Parameter names are never column references.
func (w *tokenWalker) readParam() Token {
	start := w.position
	w.position++ // colon

	for w.position < len(w.input) && isWordPart(w.current()) {
		w.position++
	}

	return Token{
		Type:   PARAM,
		Value:  string(w.input[start:w.position]),
		Offset: start,
	}
}

// readOperator reads one- and two-rune operators (=, <>, <=, >=, !=, ||, ...)
func (w *tokenWalker) readOperator() Token {
	start := w.position

	c := w.current()
	w.position++

	if next := w.current(); next != 0 {
		pair := string([]rune{c, next})
		switch pair {
		case "<>", "<=", ">=", "!=", "||", "&&", "==":
			w.position++

			return Token{Type: OPERATOR, Value: pair, Offset: start}
		}
	}

	return Token{Type: OPERATOR, Value: string(c), Offset: start}
}

func isOperatorRune(c rune) bool {
	switch c {
	case '=', '<', '>', '!', '+', '-', '/', '%', '|', '&', '^', '~', '?', ':':
		return true
	default:
		return false
	}
}

func isWordStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isWordPart(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '$'
}

// Package lexer turns Lumen source text into a token stream.
//
// It scans left to right, at each cursor position matching the longest
// pattern from a prioritized list: whitespace, comments, numbers,
// identifiers/keywords/types, char literals, string literals, operators,
// then special characters. The lexer reports the first offending byte
// offset on failure rather than trying to recover, matching the original
// interpreter's single-pass, fail-fast design.
package lexer

import (
	"github.com/juju/errors"

	"github.com/lumen-lang/lumen/token"
)

// Error is returned when the lexer cannot classify the byte at Offset.
type Error struct {
	Offset int
}

func (e *Error) Error() string {
	return "Lexer error"
}

// Lexer scans a source string into tokens one at a time.
type Lexer struct {
	src     string
	pos     int // byte offset of current in src
	current byte
	length  int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	l := &Lexer{src: src, length: len(src)}
	if l.length > 0 {
		l.current = src[0]
	}
	return l
}

// Tokenize runs the lexer to completion, returning the full token list
// ending in an EOF token, or the position of the first unrecognized byte.
func Tokenize(src string) ([]token.Token, error) {
	lex := New(src)
	var tokens []token.Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, errors.Trace(err)
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) atEnd() bool { return l.pos >= l.length }

func (l *Lexer) advance() {
	l.pos++
	if l.pos < l.length {
		l.current = l.src[l.pos]
	} else {
		l.current = 0
	}
}

func (l *Lexer) peek() byte {
	if l.pos+1 < l.length {
		return l.src[l.pos+1]
	}
	return 0
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
func isAlnum(b byte) bool { return isAlpha(b) || isDigit(b) }
func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

// skipWhitespaceAndComments discards runs of whitespace and both comment
// forms (// line comments, /* block comments */, non-nested) before the
// next token.
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		switch {
		case isSpace(l.current):
			l.advance()
		case l.current == '/' && l.peek() == '/':
			for !l.atEnd() && l.current != '\n' {
				l.advance()
			}
		case l.current == '/' && l.peek() == '*':
			l.advance()
			l.advance()
			for !l.atEnd() && !(l.current == '*' && l.peek() == '/') {
				l.advance()
			}
			if !l.atEnd() {
				l.advance()
				l.advance()
			}
		default:
			return
		}
	}
}

// Next returns the next token in the stream, or an error naming the byte
// offset where no pattern matched.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespaceAndComments()

	if l.atEnd() {
		return token.New(token.EOF, "", l.pos), nil
	}

	start := l.pos
	c := l.current

	switch {
	case isDigit(c) || (c == '.' && isDigit(l.peek())):
		return l.lexNumber(start), nil
	case isAlpha(c):
		return l.lexIdentifier(start), nil
	case c == '\'':
		return l.lexChar(start)
	case c == '"':
		return l.lexString(start)
	}

	if tok, ok := l.lexOperator(start); ok {
		return tok, nil
	}

	switch c {
	case ';', ',', '(', ')', '[', ']', '{', '}':
		l.advance()
		return token.New(token.SPECIAL, string(c), start), nil
	}

	return token.Token{}, errors.Trace(&Error{Offset: start})
}

// lexNumber matches [0-9]*\.?[0-9]+, classifying the result as integer or
// float depending on whether a '.' was consumed.
func (l *Lexer) lexNumber(start int) token.Token {
	sawDot := false
	for !l.atEnd() && (isDigit(l.current) || (l.current == '.' && !sawDot && isDigit(l.peek()))) {
		if l.current == '.' {
			sawDot = true
		}
		l.advance()
	}
	lexeme := l.src[start:l.pos]
	dataType := token.Int
	if sawDot {
		dataType = token.Float
	}
	return token.NewLiteral(dataType, lexeme, start)
}

// lexIdentifier matches [A-Za-z_][A-Za-z0-9_]* and classifies it as a
// keyword, type, or plain identifier.
func (l *Lexer) lexIdentifier(start int) token.Token {
	for !l.atEnd() && isAlnum(l.current) {
		l.advance()
	}
	lexeme := l.src[start:l.pos]
	return token.New(token.Lookup(lexeme), lexeme, start)
}

// lexChar matches 'X': a single byte between quotes. Escapes are not
// processed (spec open question #2).
func (l *Lexer) lexChar(start int) (token.Token, error) {
	l.advance() // consume opening quote
	if l.atEnd() {
		return token.Token{}, errors.Trace(&Error{Offset: start})
	}
	value := string(l.current)
	l.advance()
	if l.atEnd() || l.current != '\'' {
		return token.Token{}, errors.Trace(&Error{Offset: start})
	}
	l.advance() // consume closing quote
	return token.NewLiteral(token.Char, value, start), nil
}

// lexString matches "…" non-greedily, with no escape processing: the
// first '"' after the opening one ends the literal (spec open question
// #3 — "a\nb" denotes the four-character string a, \, n, b, not a
// three-character one).
func (l *Lexer) lexString(start int) (token.Token, error) {
	l.advance() // consume opening quote
	contentStart := l.pos
	for !l.atEnd() && l.current != '"' {
		l.advance()
	}
	if l.atEnd() {
		return token.Token{}, errors.Trace(&Error{Offset: start})
	}
	value := l.src[contentStart:l.pos]
	l.advance() // consume closing quote
	return token.NewLiteral(token.String, value, start), nil
}

// multiCharOperators must be checked longest-first so that ":=" is not
// mistaken for an unmatched ':'  and "==" is not mistaken for "=".
var multiCharOperators = []string{":=", "&&", "||", ">=", "<=", "=="}

var singleCharOperators = map[byte]bool{
	'+': true, '-': true, '*': true, '/': true, '<': true, '>': true,
}

func (l *Lexer) lexOperator(start int) (token.Token, bool) {
	remaining := l.src[l.pos:]
	for _, op := range multiCharOperators {
		if len(remaining) >= len(op) && remaining[:len(op)] == op {
			for range op {
				l.advance()
			}
			return token.New(token.OPERATOR, op, start), true
		}
	}
	if singleCharOperators[l.current] {
		op := string(l.current)
		l.advance()
		return token.New(token.OPERATOR, op, start), true
	}
	return token.Token{}, false
}

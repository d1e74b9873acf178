// Package lexer splits stencil source text into positioned lexemes.
//
// Every operator character listed in [token.Symbol] becomes a symbol lexeme.
// All other text becomes words: a maximal run of whitespace is one word, and a
// maximal run of any other non-operator characters is another. Keeping
// whitespace in its own words lets the parser concatenate prose verbatim while
// still reading identifiers without surrounding blanks.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/ardnew/stencil/lang/token"
)

// Lexer holds the scanning state.
type Lexer struct {
	input []byte
	pos   int
	line  int
	col   int
}

// New returns a Lexer reading from src.
func New(src string) *Lexer {
	return &Lexer{input: []byte(src), line: 1, col: 1}
}

// Lex returns every lexeme in src.
func Lex(src string) []token.Lexeme {
	return New(src).All()
}

// All scans the remaining input.
func (l *Lexer) All() []token.Lexeme {
	var out []token.Lexeme

	for {
		lx, ok := l.Next()
		if !ok {
			return out
		}

		out = append(out, lx)
	}
}

// Next returns the next lexeme, or false at end of input.
func (l *Lexer) Next() (token.Lexeme, bool) {
	if l.eof() {
		return token.Lexeme{}, false
	}

	start := l.position()
	r := l.peek()

	if sym, ok := token.LookupSymbol(r); ok {
		l.advance()

		return token.Sym(start, sym), true
	}

	begin := l.pos
	space := unicode.IsSpace(r)

	for !l.eof() {
		r = l.peek()
		if _, ok := token.LookupSymbol(r); ok || unicode.IsSpace(r) != space {
			break
		}

		l.advance()
	}

	return token.Word(start, string(l.input[begin:l.pos])), true
}

func (l *Lexer) peek() rune {
	r, _ := utf8.DecodeRune(l.input[l.pos:])

	return r
}

func (l *Lexer) advance() {
	r, size := utf8.DecodeRune(l.input[l.pos:])

	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) position() token.Position {
	return token.Position{Offset: l.pos, Line: l.line, Column: l.col}
}

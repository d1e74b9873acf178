// Package token defines the positioned lexemes consumed by the stencil parser.
//
// A [Lexeme] is either a word (an opaque run of text) or one of a fixed set of
// structural [Symbol] values. Every lexeme records the [Position] at which it
// begins in the source so that parse errors can point at it.
package token

//go:generate go tool stringer --linecomment --type Symbol,Kind --output token_string.go

import (
	"strconv"
	"strings"
	"unicode"
)

// Position identifies a location in source text.
type Position struct {
	Offset int // byte offset, 0-based
	Line   int // 1-based
	Column int // 1-based, in runes
}

// String returns the position as "line:column".
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Kind distinguishes words from symbols.
type Kind int

const (
	KindWord   Kind = iota // word
	KindSymbol             // symbol
)

// Symbol is one of the structural operator characters of the language.
type Symbol int

const (
	At           Symbol = iota // @
	Dot                        // .
	Ampersand                  // &
	Dollar                     // $
	ForwardSlash               // /
	BackSlash                  // \
	OpenParen                  // (
	CloseParen                 // )
	OpenBrace                  // {
	CloseBrace                 // }
	Comma                      // ,
	Equals                     // =
	Quote                      // "
	Pound                      // #
)

// symbols maps each operator character to its Symbol.
var symbols = map[rune]Symbol{
	'@':  At,
	'.':  Dot,
	'&':  Ampersand,
	'$':  Dollar,
	'/':  ForwardSlash,
	'\\': BackSlash,
	'(':  OpenParen,
	')':  CloseParen,
	'{':  OpenBrace,
	'}':  CloseBrace,
	',':  Comma,
	'=':  Equals,
	'"':  Quote,
	'#':  Pound,
}

// LookupSymbol returns the Symbol for r, if r is an operator character.
func LookupSymbol(r rune) (Symbol, bool) {
	s, ok := symbols[r]

	return s, ok
}

// Lexeme is a single positioned token.
// Text is only meaningful for words and Symbol only for symbols.
type Lexeme struct {
	Text   string
	Pos    Position
	Kind   Kind
	Symbol Symbol
}

// Word returns a word lexeme.
func Word(pos Position, text string) Lexeme {
	return Lexeme{Kind: KindWord, Text: text, Pos: pos}
}

// Sym returns a symbol lexeme.
func Sym(pos Position, sym Symbol) Lexeme {
	return Lexeme{Kind: KindSymbol, Symbol: sym, Pos: pos}
}

// IsWord reports whether l is a word.
func (l Lexeme) IsWord() bool { return l.Kind == KindWord }

// Is reports whether l is the symbol s.
func (l Lexeme) Is(s Symbol) bool {
	return l.Kind == KindSymbol && l.Symbol == s
}

// IsSpace reports whether l is a word consisting only of whitespace.
func (l Lexeme) IsSpace() bool {
	if l.Kind != KindWord {
		return false
	}

	return strings.TrimFunc(l.Text, unicode.IsSpace) == ""
}

// Surface returns the source text of l: the word text or the symbol character.
func (l Lexeme) Surface() string {
	if l.Kind == KindWord {
		return l.Text
	}

	return l.Symbol.String()
}

// String returns a debug representation such as `word("div")@1:2`.
func (l Lexeme) String() string {
	var b strings.Builder

	b.WriteString(l.Kind.String())
	b.WriteByte('(')
	b.WriteString(strconv.Quote(l.Surface()))
	b.WriteString(")@")
	b.WriteString(l.Pos.String())

	return b.String()
}

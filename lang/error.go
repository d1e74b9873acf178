package lang

//go:generate go tool stringer --linecomment --type ErrorKind --output error_string.go

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ardnew/stencil/lang/token"
)

// ErrorKind classifies parse errors.
type ErrorKind int

const (
	kindNone                 ErrorKind = iota // error
	UnexpectedEOF                             // unexpected end of input
	UnexpectedToken                           // unexpected token
	InvalidComponent                          // invalid component syntax
	ExpectedComponentCall                     // expected component call
	InvalidElement                            // invalid element syntax
	ClassWithNoName                           // class with no name
	IDWithNoName                              // id with no name
	InvalidTokenInAttributes                  // invalid token in attributes
	ExpectedVariable                          // expected variable
	InvalidFunctionCall                       // invalid function call
	UnclosedOpenBraces                        // unclosed open braces
	UnclosedCloseBraces                       // unclosed close braces
	kindEndOfStream                           // end of stream
)

// Predefined errors (sentinel values).
//
// A sentinel of a parse [ErrorKind] matches, through [errors.Is], every error
// of the same kind regardless of the lexeme it is anchored at.
var (
	ErrUnexpectedEOF            = kindError(UnexpectedEOF)
	ErrUnexpectedToken          = kindError(UnexpectedToken)
	ErrInvalidComponent         = kindError(InvalidComponent)
	ErrExpectedComponentCall    = kindError(ExpectedComponentCall)
	ErrInvalidElement           = kindError(InvalidElement)
	ErrClassWithNoName          = kindError(ClassWithNoName)
	ErrIDWithNoName             = kindError(IDWithNoName)
	ErrInvalidTokenInAttributes = kindError(InvalidTokenInAttributes)
	ErrExpectedVariable         = kindError(ExpectedVariable)
	ErrInvalidFunctionCall      = kindError(InvalidFunctionCall)
	ErrUnclosedOpenBraces       = kindError(UnclosedOpenBraces)
	ErrUnclosedCloseBraces      = kindError(UnclosedCloseBraces)

	ErrReadInput    = NewError("failed to read input")
	ErrInvalidQuery = NewError("invalid query")
	ErrQuery        = NewError("query evaluation failed")
)

// errEndOfStream terminates a driver loop. It is never reported.
var errEndOfStream = kindError(kindEndOfStream)

// Error represents a parse error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
//
// Parse errors carry an [ErrorKind] and the lexeme they are anchored at.
// Errors created with [NewError] have no kind.
type Error struct {
	msg      string
	err      error       // Wrapped error (for errors.Unwrap)
	attrs    []slog.Attr // Attributes for structured logging
	lexeme   token.Lexeme
	kind     ErrorKind
	anchored bool
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

func kindError(kind ErrorKind) *Error {
	return &Error{msg: kind.String(), kind: kind}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
//
// Anchored errors are formatted as "<line>:<col>: <msg> near <lexeme>".
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		msg := e.msg
		if e.anchored {
			msg = e.lexeme.Pos.String() + ": " + msg +
				" near " + strconv.Quote(e.lexeme.Surface())
		}

		part = append(part, msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error of the same kind.
// An unanchored target matches at any position; generic errors match by
// message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}

	if e.kind != t.kind {
		return false
	}

	if e.kind == kindNone {
		return e.msg == t.msg && t.err == nil
	}

	return !t.anchored || t.lexeme == e.lexeme
}

// Equal reports whether e and o have the same kind, message and anchor.
func (e *Error) Equal(o *Error) bool {
	if e == nil || o == nil {
		return e == o
	}

	return e.kind == o.kind &&
		e.msg == o.msg &&
		e.anchored == o.anchored &&
		e.lexeme == o.lexeme
}

// Kind returns the error classification.
func (e *Error) Kind() ErrorKind { return e.kind }

// Lexeme returns the lexeme the error is anchored at.
func (e *Error) Lexeme() (token.Lexeme, bool) { return e.lexeme, e.anchored }

// Position returns the source position of the anchoring lexeme.
func (e *Error) Position() token.Position { return e.lexeme.Pos }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+4)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.anchored {
		attrs = append(attrs,
			slog.String("pos", e.lexeme.Pos.String()),
			slog.String("near", e.lexeme.Surface()),
		)
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// At returns a copy of e anchored at lx.
func (e *Error) At(lx token.Lexeme) *Error {
	c := *e
	c.lexeme = lx
	c.anchored = true

	return &c
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.err = err

	return &c
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := *e
	c.attrs = make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(c.attrs, e.attrs)
	copy(c.attrs[len(e.attrs):], attrs)

	return &c
}

// Snippet renders the source line containing the error position of src with
// a caret under the offending column. It returns an empty string for
// unanchored errors or positions outside src.
func (e *Error) Snippet(src string) string {
	if !e.anchored {
		return ""
	}

	pos := e.lexeme.Pos
	lines := strings.Split(src, "\n")

	if pos.Line < 1 || pos.Line > len(lines) {
		return ""
	}

	var b strings.Builder

	num := strconv.Itoa(pos.Line)

	b.WriteString("  ")
	b.WriteString(num)
	b.WriteString(" | ")
	b.WriteString(lines[pos.Line-1])
	b.WriteByte('\n')

	// 2 leading spaces + " | "
	b.WriteString(strings.Repeat(" ", len(num)+5))

	// Tabs are copied; other runes pad to their display width.
	col := 1

	for _, r := range lines[pos.Line-1] {
		if col >= pos.Column {
			break
		}

		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}

		col++
	}

	if col < pos.Column {
		b.WriteString(strings.Repeat(" ", pos.Column-col))
	}

	b.WriteString("^\n")

	return b.String()
}

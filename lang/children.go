package lang

import (
	"log/slog"

	"github.com/ardnew/stencil/lang/token"
)

// children extracts the body opened by open and parses it with a child
// Parser. Nested braces are kept for the child to interpret; the body's own
// closing brace is consumed and dropped.
//
// Errors inside the body become results of the child and never fail the
// caller. Only a body left open at end of input is an error, anchored at the
// innermost unmatched brace, or at open if every nested brace was closed.
func (p *Parser) children(open token.Lexeme) ([]Result, *Error) {
	var (
		run     []token.Lexeme
		openers []token.Lexeme
	)

	for {
		lx, ok := p.cur.take()
		if !ok {
			anchor := open
			if n := len(openers); n > 0 {
				anchor = openers[n-1]
			}

			return nil, ErrUnclosedOpenBraces.At(anchor)
		}

		switch {
		case lx.Is(token.OpenBrace):
			openers = append(openers, lx)

		case lx.Is(token.CloseBrace):
			if len(openers) == 0 {
				return p.body(open, run), nil
			}

			openers = openers[:len(openers)-1]
		}

		run = append(run, lx)
	}
}

// body parses the lexemes of one body.
func (p *Parser) body(open token.Lexeme, run []token.Lexeme) []Result {
	if len(run) == 0 {
		return nil
	}

	c := p.child(run)
	out := c.Run()

	p.trace("body extracted",
		slog.String("pos", open.Pos.String()),
		slog.Int("lexemes", len(run)),
		slog.Int("results", len(out)),
		slog.Int("components", len(c.components)))

	return out
}

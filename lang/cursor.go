package lang

import "github.com/ardnew/stencil/lang/token"

// cursor is a one-token lookahead over a lexeme sequence.
type cursor struct {
	lexemes []token.Lexeme
	pos     int
}

// take returns and consumes the next lexeme.
func (c *cursor) take() (token.Lexeme, bool) {
	lx, ok := c.peek()
	if ok {
		c.pos++
	}

	return lx, ok
}

// peek returns the next lexeme without consuming it.
func (c *cursor) peek() (token.Lexeme, bool) {
	if c.pos >= len(c.lexemes) {
		return token.Lexeme{}, false
	}

	return c.lexemes[c.pos], true
}

// skipSpace consumes whitespace-only words.
func (c *cursor) skipSpace() {
	for {
		lx, ok := c.peek()
		if !ok || !lx.IsSpace() {
			return
		}

		c.pos++
	}
}

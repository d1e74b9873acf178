package lang

import (
	"strings"

	"github.com/ardnew/stencil/lang/token"
)

// identifier reads one word and returns it trimmed. A missing or blank word
// is an error of the given kind; end of input is anchored at intro.
func (p *Parser) identifier(intro token.Lexeme, kind ErrorKind) (string, *Error) {
	lx, ok := p.cur.take()
	if !ok {
		return "", ErrUnexpectedEOF.At(intro)
	}

	name := strings.TrimSpace(lx.Text)
	if !lx.IsWord() || name == "" {
		return "", kindError(kind).At(lx)
	}

	return name, nil
}

// namespaced reads a dot-separated identifier such as "user.name".
func (p *Parser) namespaced(intro token.Lexeme, kind ErrorKind) (string, *Error) {
	name, err := p.identifier(intro, kind)
	if err != nil {
		return "", err
	}

	for {
		dot, ok := p.cur.peek()
		if !ok || !dot.Is(token.Dot) {
			return name, nil
		}

		p.cur.take()

		part, err := p.identifier(dot, kind)
		if err != nil {
			return "", err
		}

		name += "." + part
	}
}

// quoted reads up to and including the next quote and returns the text in
// between, with symbols in their surface form.
func (p *Parser) quoted() string {
	var b strings.Builder

	for {
		lx, ok := p.cur.take()
		if !ok || lx.Is(token.Quote) {
			return b.String()
		}

		b.WriteString(lx.Surface())
	}
}

// positional reads "@name" entries up to the closing parenthesis. Names that
// are not words are errors of the given kind. At end of input the names read
// so far are returned with closed false.
func (p *Parser) positional(kind ErrorKind) (args []string, closed bool, err *Error) {
	for {
		p.cur.skipSpace()

		lx, ok := p.cur.take()
		if !ok {
			return args, false, nil
		}

		switch {
		case lx.Is(token.CloseParen):
			return args, true, nil

		case lx.Is(token.Comma):

		case lx.Is(token.At):
			name, err := p.identifier(lx, kind)
			if err != nil {
				return nil, false, err
			}

			args = append(args, name)

		default:
			return nil, false, ErrUnexpectedToken.At(lx)
		}
	}
}

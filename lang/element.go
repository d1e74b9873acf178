package lang

import (
	"strings"

	"github.com/ardnew/stencil/lang/token"
)

// element parses an element introduced by slash.
//
//	/tag &call(@a) (key=value "quoted" .class #id) .class #id { children }
//
// The element ends at its body, at a closing parenthesis not followed by a
// body, at whitespace, or at end of input. Input that ends inside an attribute
// or argument list yields the element collected so far.
func (p *Parser) element(slash token.Lexeme) (Node, *Error) {
	tag, err := p.identifier(slash, InvalidElement)
	if err != nil {
		return nil, err
	}

	el := &Element{Tag: tag, Pos: slash.Pos}

	for {
		lx, ok := p.cur.peek()
		if !ok || lx.IsSpace() {
			return el, nil
		}

		p.cur.take()

		switch {
		case lx.Is(token.Ampersand):
			call, err := p.attachedCall(lx)
			if err != nil {
				return nil, err
			}

			el.Calls = append(el.Calls, call)

		case lx.Is(token.OpenParen):
			body, err := p.attributes(el)
			if err != nil {
				return nil, err
			}

			if !body {
				return el, nil
			}

		case lx.Is(token.Dot):
			class, err := p.identifier(lx, ClassWithNoName)
			if err != nil {
				return nil, err
			}

			el.Classes = append(el.Classes, class)

		case lx.Is(token.Pound):
			id, err := p.identifier(lx, IDWithNoName)
			if err != nil {
				return nil, err
			}

			el.Attributes.Set("id", id)

		case lx.Is(token.OpenBrace):
			children, err := p.children(lx)
			if err != nil {
				return nil, err
			}

			el.Children = children

			return el, nil

		default:
			return nil, ErrUnexpectedToken.At(lx)
		}
	}
}

// attachedCall parses a component call declared on an element.
func (p *Parser) attachedCall(amp token.Lexeme) (*ComponentCall, *Error) {
	name, err := p.namespaced(amp, ExpectedComponentCall)
	if err != nil {
		return nil, err
	}

	call := &ComponentCall{Name: name, Pos: amp.Pos}

	open, ok := p.cur.peek()
	if !ok || !open.Is(token.OpenParen) {
		return call, nil
	}

	p.cur.take()

	call.Args, _, err = p.positional(ExpectedVariable)
	if err != nil {
		return nil, err
	}

	return call, nil
}

// attributes parses an attribute list into el. It reports whether a body
// follows the closing parenthesis.
func (p *Parser) attributes(el *Element) (bool, *Error) {
	for {
		p.cur.skipSpace()

		lx, ok := p.cur.take()
		if !ok {
			return false, nil
		}

		switch {
		case lx.Is(token.CloseParen):
			next, ok := p.cur.peek()

			return ok && next.Is(token.OpenBrace), nil

		case lx.Is(token.Quote):
			el.Attributes.Set(`"`+p.quoted()+`"`, "")

		case lx.Is(token.Dot):
			class, err := p.identifier(lx, ClassWithNoName)
			if err != nil {
				return false, err
			}

			el.Classes = append(el.Classes, class)

		case lx.Is(token.Pound):
			id, err := p.identifier(lx, IDWithNoName)
			if err != nil {
				return false, err
			}

			el.Attributes.Set("id", id)

		case lx.IsWord():
			value, err := p.attributeValue(lx)
			if err != nil {
				return false, err
			}

			el.Attributes.Set(strings.TrimSpace(lx.Text), value)

		default:
			return false, ErrInvalidTokenInAttributes.At(lx)
		}
	}
}

// attributeValue reads the optional "= value" following key.
func (p *Parser) attributeValue(key token.Lexeme) (string, *Error) {
	p.cur.skipSpace()

	lx, ok := p.cur.peek()
	if !ok {
		return "", ErrUnexpectedEOF.At(key)
	}

	switch {
	case lx.Is(token.Equals):
		p.cur.take()
		p.cur.skipSpace()

		v, ok := p.cur.take()
		if !ok {
			return "", ErrUnexpectedEOF.At(lx)
		}

		switch {
		case v.IsWord():
			return strings.TrimSpace(v.Text), nil
		case v.Is(token.Quote):
			return p.quoted(), nil
		default:
			return "", ErrInvalidTokenInAttributes.At(v)
		}

	case lx.IsWord(),
		lx.Is(token.CloseParen),
		lx.Is(token.Quote),
		lx.Is(token.Dot),
		lx.Is(token.Pound):
		return "", nil

	default:
		return "", ErrInvalidTokenInAttributes.At(lx)
	}
}

package lang

import (
	"log/slog"

	"github.com/ardnew/stencil/lang/token"
)

// component parses a component introduced by amp, either a definition
//
//	&name(@param, ...) { body }
//	&name { body }
//
// or a call
//
//	&name(@arg, ...)
//
// A definition is registered and yields an empty Text placeholder. With
// allowDefinition false a body is rejected; the driver always permits
// definitions.
func (p *Parser) component(amp token.Lexeme, allowDefinition bool) (Node, *Error) {
	name, err := p.namespaced(amp, InvalidComponent)
	if err != nil {
		return nil, err
	}

	comp := &Component{Name: name, Pos: amp.Pos}

	for {
		lx, ok := p.cur.peek()
		if !ok {
			return nil, ErrUnexpectedEOF.At(amp)
		}

		switch {
		case lx.Is(token.OpenParen):
			p.cur.take()

			params, closed, err := p.positional(UnexpectedToken)
			if err != nil {
				return nil, err
			}

			if !closed {
				return nil, ErrUnexpectedEOF.At(lx)
			}

			comp.Params = append(comp.Params, params...)

			if next, ok := p.cur.peek(); !ok || !next.Is(token.OpenBrace) {
				return &ComponentCall{
					Name: comp.Name,
					Args: comp.Params,
					Pos:  amp.Pos,
				}, nil
			}

		case lx.Is(token.OpenBrace):
			p.cur.take()

			if !allowDefinition {
				return nil, ErrExpectedComponentCall.At(lx)
			}

			body, err := p.children(lx)
			if err != nil {
				return nil, err
			}

			comp.Body = body
			p.register(comp)

			return &Text{Pos: amp.Pos}, nil

		default:
			return nil, ErrUnexpectedToken.At(lx)
		}
	}
}

// register adds comp to the registry, replacing any earlier definition.
func (p *Parser) register(comp *Component) {
	if _, ok := p.components[comp.Name]; ok {
		p.trace("component redefined", slog.String("name", comp.Name))
	}

	p.components[comp.Name] = comp

	p.trace("component registered",
		slog.String("name", comp.Name),
		slog.Int("params", len(comp.Params)),
		slog.Int("body", len(comp.Body)))
}

package lang

import (
	"strings"

	"github.com/ardnew/stencil/lang/token"
)

// function parses a function call introduced by dollar.
//
//	$name(arg = @variable, other = &component)
func (p *Parser) function(dollar token.Lexeme) (Node, *Error) {
	name, err := p.namespaced(dollar, InvalidFunctionCall)
	if err != nil {
		return nil, err
	}

	fn := &FunctionCall{Name: name, Pos: dollar.Pos}

	open, ok := p.cur.take()
	if !ok {
		return nil, ErrUnexpectedEOF.At(dollar)
	}

	if !open.Is(token.OpenParen) {
		return nil, ErrInvalidFunctionCall.At(open)
	}

	for {
		p.cur.skipSpace()

		lx, ok := p.cur.take()
		if !ok {
			return nil, ErrUnexpectedEOF.At(open)
		}

		switch {
		case lx.Is(token.CloseParen):
			return fn, nil

		case lx.Is(token.Comma):

		case lx.IsWord():
			arg, err := p.functionArg(lx)
			if err != nil {
				return nil, err
			}

			fn.Args.Set(strings.TrimSpace(lx.Text), arg)

		default:
			return nil, ErrInvalidFunctionCall.At(lx)
		}
	}
}

// functionArg reads "= @ident" or "= &ident" after the argument name.
func (p *Parser) functionArg(name token.Lexeme) (Arg, *Error) {
	p.cur.skipSpace()

	eq, ok := p.cur.take()
	if !ok {
		return Arg{}, ErrUnexpectedEOF.At(name)
	}

	if !eq.Is(token.Equals) {
		return Arg{}, ErrInvalidFunctionCall.At(eq)
	}

	p.cur.skipSpace()

	ref, ok := p.cur.take()
	if !ok {
		return Arg{}, ErrUnexpectedEOF.At(eq)
	}

	switch {
	case ref.Is(token.At):
		id, err := p.namespaced(ref, ExpectedVariable)

		return Arg{Name: id, Kind: ArgVariable}, err

	case ref.Is(token.Ampersand):
		id, err := p.namespaced(ref, ExpectedComponentCall)

		return Arg{Name: id, Kind: ArgComponent}, err

	default:
		return Arg{}, ErrInvalidFunctionCall.At(ref)
	}
}

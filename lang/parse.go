package lang

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/klauspost/readahead"

	"github.com/ardnew/stencil/lang/lexer"
	"github.com/ardnew/stencil/lang/token"
	"github.com/ardnew/stencil/log"
)

// Parser turns a lexeme sequence into results and a component registry.
//
// Every nested body is parsed by a fresh Parser created from its parent.
// A Parser is not safe for concurrent use.
type Parser struct {
	ctx        context.Context
	cur        cursor
	components Components
	output     []Result
	logger     log.Logger
	depth      int
	shared     bool
	done       bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithSharedRegistry controls whether components defined inside nested
// bodies are registered with the outermost parser. By default each nested
// body has its own registry, which is discarded once the body is parsed.
func WithSharedRegistry(share bool) Option {
	return func(p *Parser) {
		p.shared = share
	}
}

// applyOptions applies functional options to a Parser.
func applyOptions(p *Parser, opts ...Option) {
	for _, opt := range opts {
		opt(p)
	}
}

// New returns a Parser reading lexemes.
func New(ctx context.Context, lexemes []token.Lexeme, opts ...Option) *Parser {
	p := &Parser{
		ctx:        ctx,
		cur:        cursor{lexemes: lexemes},
		components: make(Components),
	}

	applyOptions(p, opts...)

	return p
}

// child returns a Parser for a nested body.
func (p *Parser) child(lexemes []token.Lexeme) *Parser {
	c := &Parser{
		ctx:        p.ctx,
		cur:        cursor{lexemes: lexemes},
		components: p.components,
		logger:     p.logger,
		depth:      p.depth + 1,
		shared:     p.shared,
	}

	if !p.shared {
		c.components = make(Components)
	}

	return c
}

// Run parses the remaining input and returns every result produced so far.
// A local error is recorded as a result and parsing resumes after it.
func (p *Parser) Run() []Result {
	if p.done {
		return p.output
	}

	for {
		node, err := p.next()
		if err == errEndOfStream {
			break
		}

		p.output = append(p.output, Result{Node: node, Err: err})
	}

	p.done = true

	p.trace("parse complete",
		slog.Int("results", len(p.output)),
		slog.Int("components", len(p.components)))

	return p.output
}

// Output returns the results of [Parser.Run].
func (p *Parser) Output() []Result { return p.output }

// Components returns the component registry.
func (p *Parser) Components() Components { return p.components }

// next dispatches on the leading lexeme.
func (p *Parser) next() (Node, *Error) {
	lx, ok := p.cur.peek()
	if !ok {
		return nil, errEndOfStream
	}

	if lx.IsWord() {
		return p.text(), nil
	}

	p.cur.take()

	switch lx.Symbol {
	case token.At:
		return p.variable(lx)
	case token.ForwardSlash:
		return p.element(lx)
	case token.BackSlash:
		return p.escape(lx)
	case token.Ampersand:
		return p.component(lx, true)
	case token.Dollar:
		return p.function(lx)
	default:
		return &Text{Value: lx.Surface(), Pos: lx.Pos}, nil
	}
}

// text concatenates consecutive words.
func (p *Parser) text() Node {
	first, _ := p.cur.take()
	value := first.Text

	for {
		lx, ok := p.cur.peek()
		if !ok || !lx.IsWord() {
			return &Text{Value: value, Pos: first.Pos}
		}

		p.cur.take()

		value += lx.Text
	}
}

func (p *Parser) variable(at token.Lexeme) (Node, *Error) {
	name, err := p.namespaced(at, ExpectedVariable)
	if err != nil {
		return nil, err
	}

	return &Variable{Name: name, Pos: at.Pos}, nil
}

// escape emits the surface form of the symbol following a backslash.
// A following word is left in place and yields empty text.
func (p *Parser) escape(bs token.Lexeme) (Node, *Error) {
	lx, ok := p.cur.peek()
	if !ok {
		return nil, errEndOfStream
	}

	if lx.IsWord() {
		return &Text{Pos: bs.Pos}, nil
	}

	p.cur.take()

	return &Text{Value: lx.Surface(), Pos: bs.Pos}, nil
}

// Document is the output of a full parse.
type Document struct {
	Results    []Result
	Components Components
}

// Parse parses lexemes into a Document.
func Parse(ctx context.Context, lexemes []token.Lexeme, opts ...Option) *Document {
	p := New(ctx, lexemes, opts...)

	return &Document{Results: p.Run(), Components: p.Components()}
}

// ParseString lexes and parses source text.
func ParseString(ctx context.Context, src string, opts ...Option) *Document {
	return Parse(ctx, lexer.Lex(src), opts...)
}

// ParseReader lexes and parses everything read from r.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Document, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...), nil
}

// Errors returns every error in d: first those of the results in document
// order, descending into element children, then those in the bodies of the
// registered components ordered by name.
func (d *Document) Errors() []*Error {
	var errs []*Error

	errs = appendErrors(errs, d.Results)

	for _, name := range d.Components.Names() {
		errs = appendErrors(errs, d.Components[name].Body)
	}

	return errs
}

// Err returns the errors of d joined, or nil if there are none.
func (d *Document) Err() error {
	errs := d.Errors()
	if len(errs) == 0 {
		return nil
	}

	joined := make([]error, len(errs))
	for i, e := range errs {
		joined[i] = e
	}

	return errors.Join(joined...)
}

func appendErrors(errs []*Error, results []Result) []*Error {
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)

			continue
		}

		if el, ok := r.Node.(*Element); ok {
			errs = appendErrors(errs, el.Children)
		}
	}

	return errs
}

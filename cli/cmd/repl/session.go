package repl

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/ardnew/stencil/lang"
)

// outputFormat selects how parsed input is echoed back.
type outputFormat int

const (
	formatTree outputFormat = iota
	formatJSON
	formatYAML
)

var formatNames = map[string]outputFormat{
	"tree": formatTree,
	"json": formatJSON,
	"yaml": formatYAML,
}

// session accumulates everything entered in one REPL run. Components defined
// on any line stay callable, and completable, on every later line.
type session struct {
	opts       []lang.Option
	source     strings.Builder
	components lang.Components
	last       *lang.Document
	format     outputFormat
	indent     int
}

func newSession(opts ...lang.Option) *session {
	return &session{
		opts:       opts,
		components: make(lang.Components),
		indent:     2,
	}
}

// use replaces the session with doc, already parsed from src. The registry
// is copied so that later lines never modify doc.
func (s *session) use(src string, doc *lang.Document) {
	s.source.Reset()
	s.source.WriteString(src)

	s.components = make(lang.Components, len(doc.Components))
	maps.Copy(s.components, doc.Components)
	s.last = doc
}

// eval parses one line of input and merges its definitions into the session.
func (s *session) eval(ctx context.Context, line string) *lang.Document {
	doc := lang.ParseString(ctx, line, s.opts...)

	maps.Copy(s.components, doc.Components)

	if n := s.source.Len(); n > 0 && !strings.HasSuffix(s.source.String(), "\n") {
		s.source.WriteByte('\n')
	}

	s.source.WriteString(line)
	s.last = doc

	return doc
}

// reset discards all input.
func (s *session) reset() {
	s.source.Reset()
	s.components = make(lang.Components)
	s.last = nil
}

func (s *session) setFormat(name string) error {
	f, ok := formatNames[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}

	s.format = f

	return nil
}

// render writes doc in the current output format.
func (s *session) render(ctx context.Context, w io.Writer, doc *lang.Document) error {
	switch s.format {
	case formatJSON:
		return doc.FormatJSON(ctx, w, s.indent)
	case formatYAML:
		return doc.FormatYAML(ctx, w, s.indent)
	default:
		return doc.Format(ctx, w, s.indent)
	}
}

// diagnostics describes every error in doc with a snippet of src.
func diagnostics(src string, doc *lang.Document) string {
	var b strings.Builder

	for _, err := range doc.Errors() {
		b.WriteString(err.Error())
		b.WriteByte('\n')
		b.WriteString(err.Snippet(src))
	}

	return b.String()
}

// list returns one line per component with a short preview.
func (s *session) list() string {
	var b strings.Builder

	for _, name := range s.components.Names() {
		fmt.Fprintf(&b, "  %s %s\n", name, formatPreview(s.components[name]))
	}

	return b.String()
}

// show renders the body of the named component.
func (s *session) show(ctx context.Context, w io.Writer, name string) error {
	comp, ok := s.components.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}

	return s.render(ctx, w, &lang.Document{Results: comp.Body})
}

// query returns the nodes of the last parsed input matching predicate.
func (s *session) query(ctx context.Context, predicate string) (string, error) {
	if s.last == nil {
		return "", ErrNoDocument
	}

	nodes, err := lang.Select(ctx, s.last.Results, predicate)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	for _, n := range nodes {
		fmt.Fprintf(&b, "%s  %s\n", n.Position(), lang.Describe(n))
	}

	return b.String(), nil
}

// names returns the completion candidates that may follow sigil.
func (s *session) names(sigil rune) []string {
	switch sigil {
	case '&':
		return s.components.Names()

	case '@':
		seen := make(map[string]struct{})

		for _, comp := range s.components {
			for _, p := range comp.Params {
				seen[p] = struct{}{}
			}
		}

		s.walk(func(n lang.Node) {
			if v, ok := n.(*lang.Variable); ok {
				seen[v.Name] = struct{}{}
			}
		})

		return slices.Sorted(maps.Keys(seen))

	case '/':
		seen := make(map[string]struct{})

		s.walk(func(n lang.Node) {
			if el, ok := n.(*lang.Element); ok {
				seen[el.Tag] = struct{}{}
			}
		})

		return slices.Sorted(maps.Keys(seen))

	default:
		return nil
	}
}

// walk visits every node of the last document and of all component bodies.
func (s *session) walk(fn func(lang.Node)) {
	if s.last != nil {
		for _, n := range lang.Walk(s.last.Results) {
			fn(n)
		}
	}

	for _, comp := range s.components {
		for _, n := range lang.Walk(comp.Body) {
			fn(n)
		}
	}
}

// formatPreview summarizes a component as "(@a, @b) { n nodes }".
func formatPreview(c *lang.Component) string {
	params := make([]string, len(c.Params))
	for i, p := range c.Params {
		params[i] = "@" + p
	}

	return fmt.Sprintf("(%s) { %d nodes }", strings.Join(params, ", "), len(c.Body))
}

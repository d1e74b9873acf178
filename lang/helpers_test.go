package lang

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/stencil/lang/token"
)

// ignorePos drops source positions from AST comparisons.
var ignorePos = cmp.FilterPath(func(p cmp.Path) bool {
	sf, ok := p.Last().(cmp.StructField)

	return ok && sf.Name() == "Pos"
}, cmp.Ignore())

func parse(t *testing.T, src string, opts ...Option) *Document {
	t.Helper()

	return ParseString(context.Background(), src, opts...)
}

func text(v string) Result { return Result{Node: &Text{Value: v}} }

func variable(name string) Result { return Result{Node: &Variable{Name: name}} }

func attrs(kv ...string) Map[string] {
	var m Map[string]
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i], kv[i+1])
	}

	return m
}

func diffResults(t *testing.T, want, got []Result) {
	t.Helper()

	if diff := cmp.Diff(want, got, ignorePos); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

// errCase expects the first result of src to be an error of kind want
// anchored at byte offset.
type errCase struct {
	name   string
	src    string
	want   *Error
	offset int
}

func runErrCases(t *testing.T, tests []errCase) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, tt.src)
			if len(doc.Results) == 0 {
				t.Fatalf("%q: no results", tt.src)
			}

			err := doc.Results[0].Err
			if err == nil {
				t.Fatalf("%q: expected %v, got node %#v", tt.src, tt.want, doc.Results[0].Node)
			}

			if !errors.Is(err, tt.want) {
				t.Errorf("%q: expected %v, got %v", tt.src, tt.want.Kind(), err.Kind())
			}

			if got := err.Position().Offset; got != tt.offset {
				t.Errorf("%q: expected error at offset %d, got %d (%v)", tt.src, tt.offset, got, err)
			}
		})
	}
}

func pos(offset, line, col int) token.Position {
	return token.Position{Offset: offset, Line: line, Column: col}
}

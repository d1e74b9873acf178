package repl

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/stencil/lang"
)

func TestSession_EvalAccumulatesComponents(t *testing.T) {
	ctx := context.Background()
	sess := newSession()

	sess.eval(ctx, "&a(@x){@x}")
	sess.eval(ctx, "&b(){text}")
	sess.eval(ctx, "&a(@y){@y}")

	if diff := cmp.Diff([]string{"a", "b"}, sess.components.Names()); diff != "" {
		t.Errorf("components mismatch (-want +got):\n%s", diff)
	}

	if got := sess.components["a"].Params; !cmp.Equal(got, []string{"y"}) {
		t.Errorf("redefinition not applied: params = %v", got)
	}

	if got, want := sess.source.String(), "&a(@x){@x}\n&b(){text}\n&a(@y){@y}"; got != want {
		t.Errorf("source = %q, want %q", got, want)
	}
}

func TestSession_UseReplaces(t *testing.T) {
	ctx := context.Background()
	sess := newSession()

	sess.eval(ctx, "&a(){x}")

	const src = "&b(){y}"

	doc, err := lang.NewStreamFromString(src).Document(ctx)
	if err != nil {
		t.Fatalf("document: %v", err)
	}

	sess.use(src, doc)

	if diff := cmp.Diff([]string{"b"}, sess.components.Names()); diff != "" {
		t.Errorf("components mismatch (-want +got):\n%s", diff)
	}

	if got := sess.source.String(); got != src {
		t.Errorf("source = %q", got)
	}

	if sess.last != doc {
		t.Error("session does not hold the given document")
	}

	sess.eval(ctx, "&c(){z}")

	if _, ok := doc.Components.Get("c"); ok {
		t.Error("evaluating a line modified the adopted document")
	}
}

func TestSession_Reset(t *testing.T) {
	ctx := context.Background()
	sess := newSession()

	sess.eval(ctx, "&a(){x}")
	sess.reset()

	if len(sess.components) != 0 || sess.source.Len() != 0 || sess.last != nil {
		t.Error("reset left session state behind")
	}

	if _, err := sess.query(ctx, "true"); !errors.Is(err, ErrNoDocument) {
		t.Errorf("query after reset: got %v, want %v", err, ErrNoDocument)
	}
}

func TestSession_SetFormat(t *testing.T) {
	ctx := context.Background()
	sess := newSession()
	doc := sess.eval(ctx, "/p{hi}")

	tests := []struct {
		format string
		want   string
	}{
		{"tree", "element p"},
		{"JSON", `"type": "element"`},
		{"yaml", "type: element"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if err := sess.setFormat(tt.format); err != nil {
				t.Fatalf("setFormat: %v", err)
			}

			var out strings.Builder
			if err := sess.render(ctx, &out, doc); err != nil {
				t.Fatalf("render: %v", err)
			}

			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("render output missing %q:\n%s", tt.want, out.String())
			}
		})
	}

	if err := sess.setFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("setFormat(xml): got %v, want %v", err, ErrUnknownFormat)
	}
}

func TestSession_ListAndShow(t *testing.T) {
	ctx := context.Background()
	sess := newSession()
	sess.eval(ctx, "&card(@title, @body){/h1{@title}}")

	if got, want := sess.list(), "  card (@title, @body) { 1 nodes }\n"; got != want {
		t.Errorf("list() = %q, want %q", got, want)
	}

	var out strings.Builder
	if err := sess.show(ctx, &out, "card"); err != nil {
		t.Fatalf("show: %v", err)
	}

	if !strings.Contains(out.String(), "element h1") {
		t.Errorf("show output missing element:\n%s", out.String())
	}

	if err := sess.show(ctx, &out, "nope"); !errors.Is(err, ErrUnknownComponent) {
		t.Errorf("show(nope): got %v, want %v", err, ErrUnknownComponent)
	}
}

func TestSession_Query(t *testing.T) {
	ctx := context.Background()
	sess := newSession()
	sess.eval(ctx, "/div{/span{@x}} @y")

	got, err := sess.query(ctx, `type == "variable"`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	if lines := strings.Count(got, "\n"); lines != 2 {
		t.Errorf("query matched %d nodes, want 2:\n%s", lines, got)
	}
}

func TestSession_Names(t *testing.T) {
	ctx := context.Background()
	sess := newSession()
	sess.eval(ctx, "&card(@title){/h1{@title}}")
	sess.eval(ctx, "/p{@user.name}")

	tests := []struct {
		sigil rune
		want  []string
	}{
		{'&', []string{"card"}},
		{'@', []string{"title", "user.name"}},
		{'/', []string{"h1", "p"}},
		{'$', nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.sigil), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, sess.names(tt.sigil)); diff != "" {
				t.Errorf("names(%q) mismatch (-want +got):\n%s", tt.sigil, diff)
			}
		})
	}
}

func TestDiagnostics(t *testing.T) {
	src := "/div(){x"
	doc := newSession().eval(context.Background(), src)

	got := diagnostics(src, doc)
	if !strings.Contains(got, "unclosed open braces") {
		t.Errorf("diagnostics missing message:\n%s", got)
	}

	if !strings.Contains(got, "^") {
		t.Errorf("diagnostics missing caret:\n%s", got)
	}
}

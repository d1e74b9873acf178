package repl

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDetectComponentCall(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  componentCall
	}{
		{"open_paren", "&card(", componentCall{"card", 0, true}},
		{"second_arg", "&card(a, b", componentCall{"card", 1, true}},
		{"closed", "&card(a)", componentCall{}},
		{"element_attributes", "/div(class=x", componentCall{}},
		{"function_args", "$fmt(x", componentCall{}},
		{"namespaced", "&ns.card(x", componentCall{"ns.card", 0, true}},
		{"nested_call", "&outer(&inner(a, ", componentCall{"inner", 1, true}},
		{"after_closed_nested", "&outer(&inner(a), ", componentCall{"outer", 1, true}},
		{"no_name", "&card(a)(b", componentCall{}},
		{"plain_text", "hello", componentCall{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectComponentCall(tt.input, len(tt.input))
			if got != tt.want {
				t.Errorf("detectComponentCall(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetSignature(t *testing.T) {
	sess := newSession()
	sess.eval(context.Background(), "&card(@title, @body){/h1{@title}@body}")

	params, ok := getSignature(sess.components, "card")
	if !ok {
		t.Fatal("getSignature(card) not found")
	}

	if diff := cmp.Diff([]string{"title", "body"}, params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}

	if _, ok := getSignature(sess.components, "missing"); ok {
		t.Error("getSignature(missing) found")
	}
}

func TestRenderSignatureHint(t *testing.T) {
	tests := []struct {
		name    string
		params  []string
		current int
		want    []string
	}{
		{"no_params", nil, 0, []string{"&card", "(", ")"}},
		{"first", []string{"title", "body"}, 0, []string{"&card", "@title", "@body"}},
		{"past_end", []string{"title"}, 3, []string{"&card", "@title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderSignatureHint("card", tt.params, tt.current)

			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("renderSignatureHint() = %q, missing %q", got, want)
				}
			}
		})
	}
}

package repl

import (
	"context"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/stencil/log"
)

const testComponents = "&card(@title){/h1{@title}}\n" +
	"&cart(@item){@item}\n" +
	"&list(@items){/ul{@items}}"

func newTestModel(t *testing.T) model {
	t.Helper()

	sess := newSession()
	if doc := sess.eval(context.Background(), testComponents); doc.Err() != nil {
		t.Fatalf("eval: %v", doc.Err())
	}

	return newModel(context.Background(), sess, NewHistory(""), log.Logger{})
}

func withInput(m model, input string) model {
	m.input.SetValue(input)
	m.input.SetCursor(len(input))

	return m
}

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"after_component_sigil", "&ca", 3, "ca", 1, 3},
		{"namespaced_tag", "/div.cl", 7, "div.cl", 1, 7},
		{"namespaced_variable", "@user.na", 8, "user.na", 1, 8},
		{"inside_args", "&card(@t", 8, "t", 7, 8},
		{"empty_after_equals", "x=", 2, "", 2, 2},
		{"after_space", "hello wor", 9, "wor", 6, 9},
		{"empty_after_sigil", "&", 1, "", 1, 1},
		{"mid_word", "&card", 2, "card", 1, 5},
		{"cursor_past_end", "ab", 9, "ab", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestSigilBefore(t *testing.T) {
	tests := []struct {
		input     string
		wordStart int
		want      rune
	}{
		{"&ca", 1, '&'},
		{"hello", 0, 0},
		{"a b", 2, 0},
		{"&card(@t", 7, '@'},
		{"/d", 1, '/'},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := sigilBefore(tt.input, tt.wordStart); got != tt.want {
				t.Errorf("sigilBefore(%q, %d) = %q, want %q",
					tt.input, tt.wordStart, got, tt.want)
			}
		})
	}
}

func TestComputeMatches(t *testing.T) {
	tests := []struct {
		name  string
		mode  inputMode
		input string
		want  []string
	}{
		{"component_prefix", modeEval, "&ca", []string{"card", "cart"}},
		{"bare_sigil_lists_all", modeEval, "&", []string{"card", "cart", "list"}},
		{"no_sigil", modeEval, "ca", nil},
		{"parameter", modeEval, "@ite", []string{"item", "items", "title"}},
		{"tag", modeEval, "/u", []string{"ul"}},
		{"command", modeCtrl, "sh", []string{"show"}},
		{"show_argument", modeCtrl, "show li", []string{"list"}},
		{"format_argument", modeCtrl, "format ya", []string{"yaml"}},
		{"no_argument_completion", modeCtrl, "list x", nil},
		{"empty_command", modeCtrl, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m.mode = tt.mode
			m = withInput(m, tt.input)

			matches, _, _, _ := m.computeMatches()

			var got []string
			for _, match := range matches {
				got = append(got, match.Str)
			}

			slices.Sort(got)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("computeMatches(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestCycle(t *testing.T) {
	m := withInput(newTestModel(t), "&ca")
	refreshMatches(&m, false)

	m, _ = m.cycle(1)
	first := m.input.Value()

	m, _ = m.cycle(1)
	second := m.input.Value()

	if first == second {
		t.Fatalf("cycle did not advance: %q", first)
	}

	for _, got := range []string{first, second} {
		if got != "&card" && got != "&cart" {
			t.Errorf("cycle produced %q", got)
		}
	}

	m, _ = m.cycle(1)
	if got := m.input.Value(); got != first {
		t.Errorf("cycle did not wrap: got %q, want %q", got, first)
	}
}

func TestCycle_SingleCandidateCompletes(t *testing.T) {
	m := withInput(newTestModel(t), "&lis")
	refreshMatches(&m, false)

	m, _ = m.cycle(1)

	if got := m.input.Value(); got != "&list" {
		t.Errorf("input = %q, want %q", got, "&list")
	}

	if m.tabActive {
		t.Error("tab cycling still active after single completion")
	}
}

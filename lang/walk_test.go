package lang

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWalk(t *testing.T) {
	doc := parse(t, "/ul{/li{@a}@,}$f()")

	var got []string
	for depth, n := range Walk(doc.Results) {
		got = append(got, NodeType(n)+":"+string(rune('0'+depth)))
	}

	want := []string{"element:0", "element:1", "variable:2", "function_call:0"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("walk mismatch (-want +got):\n%s", diff)
	}
}

func TestWalk_Break(t *testing.T) {
	doc := parse(t, "/ul{/li{@a}/li{@b}} @c")

	count := 0
	for _, n := range Walk(doc.Results) {
		count++

		if v, ok := n.(*Variable); ok && v.Name == "a" {
			break
		}
	}

	if count != 3 {
		t.Errorf("expected 3 nodes before break, got %d", count)
	}
}

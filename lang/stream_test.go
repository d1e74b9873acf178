package lang

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

func TestStream_Document(t *testing.T) {
	t.Cleanup(ClearCache)

	ctx := context.Background()
	s := NewStream(strings.NewReader("&a{x}&b(@p){y} @v"))

	doc, err := s.Document(ctx)
	if err != nil {
		t.Fatalf("document: %v", err)
	}

	if len(doc.Results) != 4 {
		t.Errorf("expected 4 results, got %d", len(doc.Results))
	}

	src, err := s.Source(ctx)
	if err != nil || src != "&a{x}&b(@p){y} @v" {
		t.Errorf("unexpected source %q (%v)", src, err)
	}

	b, err := s.Component(ctx, "b")
	if err != nil {
		t.Fatalf("component: %v", err)
	}

	if diff := cmp.Diff([]string{"p"}, b.Params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}

	_, err = s.Component(ctx, "missing")
	if !errors.Is(err, ErrComponentNotFound) {
		t.Errorf("expected component not found, got %v", err)
	}

	var names []string
	for c := range s.Components(ctx) {
		names = append(names, c.Name)
	}

	if diff := cmp.Diff([]string{"a", "b"}, names); diff != "" {
		t.Errorf("components mismatch (-want +got):\n%s", diff)
	}
}

func TestStream_Cache(t *testing.T) {
	t.Cleanup(ClearCache)

	ctx := context.Background()
	const src = "/div{&inner{x}}"

	first, err := NewStreamFromString(src).Document(ctx)
	if err != nil {
		t.Fatalf("document: %v", err)
	}

	second, err := NewStream(strings.NewReader(src)).Document(ctx)
	if err != nil {
		t.Fatalf("document: %v", err)
	}

	if first != second {
		t.Error("expected identical sources to share a document")
	}

	shared, err := NewStreamFromString(src, WithSharedRegistry(true)).Document(ctx)
	if err != nil {
		t.Fatalf("document: %v", err)
	}

	if shared == first {
		t.Error("expected shared registry to parse separately")
	}

	if len(shared.Components) != 1 || len(first.Components) != 0 {
		t.Errorf("unexpected registries: %v and %v",
			shared.Components.Names(), first.Components.Names())
	}

	ClearCache()

	third, _ := NewStreamFromString(src).Document(ctx)
	if third == first {
		t.Error("expected a fresh document after clearing the cache")
	}
}

func TestStream_ReadError(t *testing.T) {
	s := NewStream(iotest.ErrReader(iotest.ErrTimeout))

	if _, err := s.Document(context.Background()); !errors.Is(err, ErrReadInput) {
		t.Errorf("expected read input error, got %v", err)
	}

	count := 0
	for range s.Components(context.Background()) {
		count++
	}

	if count != 0 {
		t.Errorf("expected no components, got %d", count)
	}
}

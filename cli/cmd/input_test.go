package cmd

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
)

func TestResolveSource(t *testing.T) {
	first := writeFiles(t, map[string]string{"both.stn": "first"})
	second := writeFiles(t, map[string]string{
		"both.stn":  "second",
		"page.stn":  "page",
		"plain.txt": "plain",
	})

	t.Setenv(EnvSearchPath, second)

	ctx := WithSearchPath(context.Background(), []string{first})

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"existing_path", filepath.Join(second, "page.stn"), filepath.Join(second, "page.stn")},
		{"extension_added", "page", filepath.Join(second, "page.stn")},
		{"exact_name", "plain.txt", filepath.Join(second, "plain.txt")},
		{"flag_dirs_first", "both", filepath.Join(first, "both.stn")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveSource(ctx, tt.src)
			if err != nil {
				t.Fatalf("resolveSource(%q): %v", tt.src, err)
			}

			if got != tt.want {
				t.Errorf("resolveSource(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}

	for _, src := range []string{"missing", "plain", filepath.Join(first, "missing.stn")} {
		t.Run("not_found_"+filepath.Base(src), func(t *testing.T) {
			if _, err := resolveSource(ctx, src); !errors.Is(err, ErrSourceNotFound) {
				t.Errorf("resolveSource(%q): got %v, want %v", src, err, ErrSourceNotFound)
			}
		})
	}
}

func TestOpenSource_GlobalSources(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.stn": "A", "b.stn": "B"})

	ctx := WithSourceFiles(context.Background(), []string{
		filepath.Join(dir, "a.stn"), filepath.Join(dir, "b.stn"),
	})

	r, err := openSource(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "AB" {
		t.Errorf("read %q, want %q", data, "AB")
	}
}

func TestOpenSource_Stdin(t *testing.T) {
	pipeStdin(t, "from stdin")

	r, err := openSource(context.Background(), "-")
	if err != nil {
		t.Fatal(err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "from stdin" {
		t.Errorf("read %q", data)
	}
}

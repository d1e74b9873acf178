package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/stencil/lang"
	"github.com/ardnew/stencil/pkg"
)

// runner is implemented by every command.
type runner interface {
	Run(ctx context.Context) error
}

// run executes cmd against a source file holding src and returns its output.
func run(t *testing.T, src string, setSource func(path string) runner) (string, error) {
	t.Helper()

	lang.ClearCache()

	dir := writeFiles(t, map[string]string{"input.stn": src})

	var out bytes.Buffer

	ctx := WithOutput(context.Background(), &out)
	err := setSource(filepath.Join(dir, "input.stn")).Run(ctx)

	return out.String(), err
}

func TestParse_Run(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		cmd      Parse
		want     string
		contains string
		wantErr  error
	}{
		{
			name: "tree",
			src:  "/p.x{@a}",
			cmd:  Parse{Format: "tree", Indent: 2},
			want: "1:1  element p .x\n1:6    variable @a\n",
		},
		{
			name:     "json",
			src:      "/p{x}",
			cmd:      Parse{Format: "json", Indent: 2},
			contains: `"type": "element"`,
		},
		{
			name:     "yaml",
			src:      "/p{x}",
			cmd:      Parse{Format: "yaml", Indent: 2},
			contains: "type: element",
		},
		{
			name:     "errors_reported_in_output",
			src:      "/div(){x",
			cmd:      Parse{Format: "tree", Indent: 2},
			contains: "error unclosed open braces",
		},
		{
			name:    "strict",
			src:     "/div(){x",
			cmd:     Parse{Format: "tree", Indent: 2, Strict: true},
			wantErr: ErrInvalidSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.src, func(path string) runner {
				c := tt.cmd
				c.Source = path

				return &c
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
				}

				if !errors.Is(err, lang.ErrUnclosedOpenBraces) {
					t.Errorf("Run() error = %v, want wrapped syntax error", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if tt.want != "" {
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("output mismatch (-want +got):\n%s", diff)
				}
			}

			if !strings.Contains(got, tt.contains) {
				t.Errorf("output missing %q:\n%s", tt.contains, got)
			}
		})
	}
}

func TestParse_MissingSource(t *testing.T) {
	p := Parse{Format: "tree", Source: filepath.Join(t.TempDir(), "nope.stn")}

	if err := p.Run(context.Background()); !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("Run() error = %v, want %v", err, ErrSourceNotFound)
	}
}

func TestComponents_Run(t *testing.T) {
	const src = "&a(@x){@x}\n&b{/p{t}}"

	tests := []struct {
		name    string
		cmd     Components
		want    string
		wantErr error
	}{
		{
			name: "all",
			want: "1:1  &a(@x)\n2:1  &b()\n",
		},
		{
			name: "selected_with_body",
			cmd:  Components{Names: []string{"b"}, Body: true, Indent: 2},
			want: "2:1  &b()\n2:4  element p\n2:7    text \"t\"\n",
		},
		{
			name:    "unknown",
			cmd:     Components{Names: []string{"c"}},
			wantErr: lang.ErrComponentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, src, func(path string) runner {
				c := tt.cmd
				c.Source = path

				return &c
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuery_Run(t *testing.T) {
	const src = "/div{@a}\n&c(@v){@v}"

	tests := []struct {
		name    string
		cmd     Query
		want    string
		wantErr error
	}{
		{
			name: "document_only",
			cmd:  Query{Expr: `type == "variable"`},
			want: "1:6  variable @a\n",
		},
		{
			name: "with_components",
			cmd:  Query{Expr: `type == "variable"`, Components: true},
			want: "1:6  variable @a\n2:8  variable @v\n",
		},
		{
			name:    "require_match",
			cmd:     Query{Expr: `type == "function_call"`, Require: true},
			wantErr: ErrNoMatch,
		},
		{
			name:    "invalid_expr",
			cmd:     Query{Expr: `type ==`},
			wantErr: lang.ErrInvalidQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, src, func(path string) runner {
				c := tt.cmd
				c.Source = path

				return &c
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLex_Run(t *testing.T) {
	got, err := run(t, "/p x", func(path string) runner {
		return &Lex{Source: path}
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := strings.Join([]string{
		`1:1       symbol  "/"`,
		`1:2       word    "p"`,
		`1:4       word    "x"`,
		``,
	}, "\n")

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestVersion_Run(t *testing.T) {
	var out bytes.Buffer

	v := Version{Author: true}
	if err := v.Run(WithOutput(context.Background(), &out)); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if lines[0] != pkg.Name+" "+pkg.Version() {
		t.Errorf("version line = %q", lines[0])
	}

	if len(lines) != 1+len(pkg.Author) {
		t.Errorf("got %d lines, want %d", len(lines), 1+len(pkg.Author))
	}
}

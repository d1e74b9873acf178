package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"
)

type resolverCLI struct {
	Log struct {
		Level  string `default:"info"`
		Pretty bool   `default:"true" negatable:""`
	} `embed:"" group:"log" prefix:"log-"`

	Path   []string
	Shared bool
	Indent int `default:"2"`
}

func parseWithConfig(t *testing.T, content string, args ...string) resolverCLI {
	t.Helper()

	path := filepath.Join(t.TempDir(), baseConfig)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	var cli resolverCLI

	parser, err := kong.New(&cli,
		kong.ExplicitGroups([]kong.Group{{Key: "log", Title: "log"}}),
		kong.Configuration(loadTOML, path),
	)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}

	return cli
}

func TestLoadTOML_Resolve(t *testing.T) {
	cli := parseWithConfig(t, `
path = ["a", "b"]
shared = true
indent = 4

[log]
level = "debug"
pretty = false
`)

	if cli.Log.Level != "debug" {
		t.Errorf("log level = %q, want %q", cli.Log.Level, "debug")
	}

	if cli.Log.Pretty {
		t.Error("log pretty = true, want false")
	}

	if !cli.Shared {
		t.Error("shared = false, want true")
	}

	if cli.Indent != 4 {
		t.Errorf("indent = %d, want 4", cli.Indent)
	}

	if diff := cmp.Diff([]string{"a", "b"}, cli.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadTOML_UnderscoreKeys(t *testing.T) {
	cli := parseWithConfig(t, "log_level = \"warn\"\n")

	if cli.Log.Level != "warn" {
		t.Errorf("log level = %q, want %q", cli.Log.Level, "warn")
	}
}

func TestLoadTOML_FlagsOverride(t *testing.T) {
	cli := parseWithConfig(t, "[log]\nlevel = \"debug\"\n", "--log-level=error")

	if cli.Log.Level != "error" {
		t.Errorf("log level = %q, want %q", cli.Log.Level, "error")
	}
}

func TestLoadTOML_Defaults(t *testing.T) {
	cli := parseWithConfig(t, "")

	if cli.Log.Level != "info" || !cli.Log.Pretty || cli.Indent != 2 {
		t.Errorf("defaults not applied: %+v", cli)
	}
}

func TestFlagValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"int", int64(3), "3"},
		{"float", 1.5, "1.5"},
		{"string", "x", "x"},
		{"bool", true, true},
		{"list", []any{"a", int64(2), false}, "a,2,false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := flagValue(tt.in); got != tt.want {
				t.Errorf("flagValue(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
)

// loadTOML is a [kong.ConfigurationLoader] for TOML configuration files:
//
//	kong.Configuration(loadTOML, "/path/to/config.toml")
//
// Top-level keys name flags directly, with hyphens or underscores. A table
// holds the flags of one group, keyed without the group prefix:
//
//	path = ["~/templates"]
//	shared = true
//
//	[log]
//	level = "debug"
//	pretty = false
//
// Command-line flags override configuration values.
func loadTOML(r io.Reader) (kong.Resolver, error) {
	var values map[string]any

	if _, err := toml.NewDecoder(r).Decode(&values); err != nil {
		return nil, err
	}

	return config(values), nil
}

// config implements [kong.Resolver] over decoded TOML.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (r config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if v, ok := lookup(r, flag.Name); ok {
		return flagValue(v), nil
	}

	if flag.Group != nil && flag.Group.Key != "" {
		if table, ok := r[flag.Group.Key].(map[string]any); ok {
			name := strings.TrimPrefix(flag.Name, flag.Group.Key+"-")
			if v, ok := lookup(table, name); ok {
				return flagValue(v), nil
			}
		}
	}

	return nil, nil
}

// lookup finds name in m, spelled with hyphens or underscores.
func lookup(m map[string]any, name string) (any, bool) {
	if v, ok := m[name]; ok {
		return v, true
	}

	v, ok := m[strings.ReplaceAll(name, "-", "_")]

	return v, ok
}

// flagValue converts a decoded TOML value to a form Kong can parse. Kong
// expects numbers as strings, and lists as comma-separated strings.
func flagValue(v any) any {
	switch v := v.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, toString(flagValue(item)))
		}

		return strings.Join(items, ",")
	default:
		return v
	}
}

func toString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

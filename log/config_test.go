package log

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestConfig_Options(t *testing.T) {
	var tee bytes.Buffer

	tests := []struct {
		name  string
		opt   Option
		check func(config) bool
	}{
		{"level", WithLevel(LevelWarn), func(c config) bool { return c.level == LevelWarn }},
		{"trace level", WithLevel(LevelTrace), func(c config) bool { return c.level == LevelTrace }},
		{"format", WithFormat(FormatJSON), func(c config) bool { return c.format == FormatJSON }},
		{"caller", WithCaller(true), func(c config) bool { return c.caller }},
		{"pretty off", WithPretty(false), func(c config) bool { return !c.pretty }},
		{"nil output", WithOutput(nil), func(c config) bool { return c.output != nil }},
		{"tee", WithTee(&tee), func(c config) bool { return len(c.tee) == 1 && c.tee[0] == &tee }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c := tt.opt(config{}); !tt.check(c) {
				t.Errorf("option not applied: %+v", c)
			}
		})
	}
}

func TestConfig_WithTeeNilClears(t *testing.T) {
	var a, b bytes.Buffer

	c := apply(config{}, WithTee(&a), WithTee(&b))
	if len(c.tee) != 2 {
		t.Fatalf("expected 2 tee writers, got %d", len(c.tee))
	}

	if c = WithTee(nil)(c); c.tee != nil {
		t.Errorf("expected tee writers cleared, got %d", len(c.tee))
	}
}

func TestConfig_CloneIsIndependent(t *testing.T) {
	var a, b bytes.Buffer

	base := makeConfig(&bytes.Buffer{}, WithTee(&a))
	derived := base.clone(WithTee(&b), WithLevel(LevelError))

	if len(base.tee) != 1 || base.level != DefaultLevel {
		t.Errorf("clone modified its source: tee=%d level=%v", len(base.tee), base.level)
	}

	if len(derived.tee) != 2 || derived.level != LevelError {
		t.Errorf("clone options not applied: tee=%d level=%v", len(derived.tee), derived.level)
	}

	if base.mutex == derived.mutex {
		t.Error("clone shares the mutex of its source")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"trace":   LevelTrace,
		"TRACE":   LevelTrace,
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warn":    LevelWarn,
		"error":   LevelError,
		"bogus":   DefaultLevel,
		"":        DefaultLevel,
		"error+2": Level(slog.LevelError + 2),
	}

	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"json":   FormatJSON,
		" JSON ": FormatJSON,
		"text":   FormatText,
		"yaml":   DefaultFormat,
	}

	for in, want := range tests {
		if got := ParseFormat(in); got != want {
			t.Errorf("ParseFormat(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLevelsAndFormats(t *testing.T) {
	levels := slices.Collect(Levels())
	if want := []string{"trace", "debug", "info", "warn", "error"}; !slices.Equal(levels, want) {
		t.Errorf("Levels() = %v, want %v", levels, want)
	}

	formats := slices.Collect(Formats())
	if want := []string{"text", "json"}; !slices.Equal(formats, want) {
		t.Errorf("Formats() = %v, want %v", formats, want)
	}
}

func TestConfig_FormatTime(t *testing.T) {
	now := time.Date(2023, 10, 15, 14, 30, 45, 123456789, time.UTC)

	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{"named", "RFC3339", "2023-10-15T14:30:45Z"},
		{"named nano", "RFC3339Nano", "2023-10-15T14:30:45.123456789Z"},
		{"custom verbatim", "  2006-01-02 15:04:05.000", "  2023-10-15 14:30:45.123"},
		{"unknown name is a layout", "UNKNOWN_FORMAT", "UNKNOWN_FORMAT"},
		{"empty disables", "", ""},
		{"blank disables", " \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := WithTimeLayout(tt.layout)(config{})
			if got := c.formatTime(now); got != tt.want {
				t.Errorf("formatTime = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig_HandlerOmitsTimeWhenDisabled(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithTimeLayout(""), WithPretty(false)).Info("no clock")

	if strings.Contains(buf.String(), "time=") {
		t.Errorf("expected no time attribute, got %q", buf.String())
	}
}

func BenchmarkConfig_FormatTime(b *testing.B) {
	c := WithTimeLayout("RFC3339Nano")(config{})
	now := time.Now()

	for b.Loop() {
		_ = c.formatTime(now)
	}
}

package lang

import (
	"log/slog"
	"sort"

	"github.com/ardnew/stencil/log"
)

// trace logs msg at Trace level with the nesting depth of p attached.
func (p *Parser) trace(msg string, attrs ...slog.Attr) {
	if !p.logger.Enabled(p.ctx, log.LevelTrace) {
		return
	}

	p.logger.TraceContext(p.ctx, msg,
		append([]slog.Attr{slog.Int("depth", p.depth)}, attrs...)...)
}

func sortedKeys[T any](m map[string]T) []string {
	if len(m) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

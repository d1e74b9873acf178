package lang

import (
	"context"

	"github.com/ardnew/stencil/lang/token"
)

// ScanComponents harvests component definitions without building a document.
//
// Lexemes are skipped one at a time until an ampersand, which starts a
// definition. Since element bodies are not entered as bodies, a definition
// inside one is found as well, but definitions nested in another component's
// body are not (unless [WithSharedRegistry] is set). Malformed definitions are
// dropped silently.
func ScanComponents(
	ctx context.Context,
	lexemes []token.Lexeme,
	opts ...Option,
) Components {
	p := New(ctx, lexemes, opts...)

	for {
		lx, ok := p.cur.take()
		if !ok {
			break
		}

		if lx.Is(token.Ampersand) {
			_, _ = p.component(lx, true)
		}
	}

	return p.components
}

package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/stencil/lang/lexer"
)

// Lex prints the lexemes of a source, one per line.
type Lex struct {
	Space bool `help:"Include whitespace-only words."`

	Source string `arg:"" help:"Source file, name on the search path, or '-' for stdin." name:"source" optional:""`
}

// Run executes the lex command.
func (l *Lex) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	stream, err := loadStream(ctx, l.Source)
	if err != nil {
		return err
	}

	src, _ := stream.Source(ctx)
	w := outputFrom(ctx)

	for _, lx := range lexer.Lex(src) {
		if lx.IsSpace() && !l.Space {
			continue
		}

		_, err := fmt.Fprintf(w, "%-8s  %-6s  %q\n", lx.Pos, lx.Kind, lx.Surface())
		if err != nil {
			return ErrWriteOutput.With(slog.String("lexeme", lx.String())).Wrap(err)
		}
	}

	return nil
}

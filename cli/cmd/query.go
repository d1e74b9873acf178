package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/stencil/lang"
)

// Query prints the nodes of a source matching an expr-lang predicate.
type Query struct {
	Components bool   `help:"Also search component bodies."                       short:"c"`
	Require    bool   `help:"Fail if no node matches."`
	Source     string `help:"Source file, name on the search path, or '-' for stdin." short:"f"`

	Expr string `arg:"" help:"expr-lang predicate over node fields such as type, tag, name or depth." name:"expr"`
}

// Run executes the query command.
func (q *Query) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	stream, err := loadStream(ctx, q.Source)
	if err != nil {
		return err
	}

	doc, err := stream.Document(ctx)
	if err != nil {
		return err
	}

	nodes, err := lang.Select(ctx, doc.Results, q.Expr)
	if err != nil {
		return err
	}

	if q.Components {
		for _, name := range doc.Components.Names() {
			more, err := lang.Select(ctx, doc.Components[name].Body, q.Expr)
			if err != nil {
				return err
			}

			nodes = append(nodes, more...)
		}
	}

	if q.Require && len(nodes) == 0 {
		return ErrNoMatch.With(slog.String("expr", q.Expr))
	}

	w := outputFrom(ctx)

	for _, n := range nodes {
		if _, err := fmt.Fprintf(w, "%s  %s\n", n.Position(), lang.Describe(n)); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}

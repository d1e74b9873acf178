package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/stencil/log"
)

// Parse parses a source and prints its syntax tree.
type Parse struct {
	Format string `default:"tree" enum:"tree,json,yaml" help:"Output format (${enum})."                         short:"o"`
	Indent int    `default:"2"                          help:"Indent width; 0 prints JSON and YAML compactly." short:"i"`
	Strict bool   `                                     help:"Fail if the source has syntax errors."`

	Source string `arg:"" help:"Source file, name on the search path, or '-' for stdin." name:"source" optional:""`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	stream, err := loadStream(ctx, p.Source)
	if err != nil {
		return err
	}

	src, _ := stream.Source(ctx)

	doc, err := stream.Document(ctx)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "parsed source",
		slog.String("source", p.Source),
		slog.Int("results", len(doc.Results)),
		slog.Int("components", len(doc.Components)),
	)

	if err := report(ctx, src, doc, p.Strict); err != nil {
		return err
	}

	w := outputFrom(ctx)

	switch p.Format {
	case "json":
		err = doc.FormatJSON(ctx, w, p.Indent)
	case "yaml":
		err = doc.FormatYAML(ctx, w, p.Indent)
	default:
		err = doc.Format(ctx, w, p.Indent)
	}

	if err != nil {
		return ErrWriteOutput.With(slog.String("format", p.Format)).Wrap(err)
	}

	return nil
}

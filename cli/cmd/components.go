package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/stencil/lang"
)

// Components lists the components a source defines.
type Components struct {
	Body   bool   `help:"Also print each component body." short:"b"`
	Indent int    `default:"2" help:"Indent width for bodies." short:"i"`
	Source string `help:"Source file, name on the search path, or '-' for stdin." short:"f"`

	Names []string `arg:"" help:"Only print these components." name:"name" optional:""`
}

// Run executes the components command.
func (c *Components) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	stream, err := loadStream(ctx, c.Source)
	if err != nil {
		return err
	}

	var comps []*lang.Component

	if len(c.Names) == 0 {
		for comp := range stream.Components(ctx) {
			comps = append(comps, comp)
		}
	} else {
		for _, name := range c.Names {
			comp, err := stream.Component(ctx, name)
			if err != nil {
				return err
			}

			comps = append(comps, comp)
		}
	}

	w := outputFrom(ctx)

	for _, comp := range comps {
		if err := c.write(ctx, w, comp); err != nil {
			return ErrWriteOutput.With(slog.String("component", comp.Name)).Wrap(err)
		}
	}

	return nil
}

func (c *Components) write(ctx context.Context, w io.Writer, comp *lang.Component) error {
	params := make([]string, len(comp.Params))
	for i, p := range comp.Params {
		params[i] = "@" + p
	}

	_, err := fmt.Fprintf(w, "%s  &%s(%s)\n", comp.Pos, comp.Name, strings.Join(params, ", "))
	if err != nil || !c.Body {
		return err
	}

	body := &lang.Document{Results: comp.Body}

	return body.Format(ctx, w, c.Indent)
}

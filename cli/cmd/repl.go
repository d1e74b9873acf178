package cmd

import (
	"context"
	"io"

	"github.com/ardnew/stencil/cli/cmd/repl"
	"github.com/ardnew/stencil/log"
)

// Repl starts an interactive session that parses each line as it is entered.
type Repl struct {
	Source string `arg:"" help:"Source whose components are loaded first, or '-' for stdin." name:"source" optional:""`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var reader io.Reader

	switch {
	case r.Source != "":
		rc, err := openSource(ctx, r.Source)
		if err != nil {
			return err
		}
		defer rc.Close()

		reader = rc

	case sourceFilesFrom(ctx) != nil:
		reader = sourceFilesFrom(ctx)
	}

	var cacheDir string
	if ktx := kongContextFrom(ctx); ktx != nil {
		cacheDir = ktx.Model.Vars()[CacheIdentifier]
	}

	return repl.Run(ctx, reader, cacheDir, log.Default(), parseOptionsFrom(ctx)...)
}

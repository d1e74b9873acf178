package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/stencil/pkg"
)

// Version prints the program version.
type Version struct {
	Author bool `help:"Also print author contact information."`
}

// Run executes the version command.
func (v *Version) Run(ctx context.Context) error {
	w := outputFrom(ctx)

	if _, err := fmt.Fprintln(w, pkg.Name, pkg.Version()); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	if !v.Author {
		return nil
	}

	for _, a := range pkg.Author {
		if _, err := fmt.Fprintf(w, "%s <%s>\n", a.Name, a.Email); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}

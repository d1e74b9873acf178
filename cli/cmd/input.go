package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/ardnew/mung"

	"github.com/ardnew/stencil/lang"
	"github.com/ardnew/stencil/log"
	"github.com/ardnew/stencil/pkg"
)

// EnvSearchPath names the environment variable holding a list of directories
// searched for source names, separated by [os.PathListSeparator].
const EnvSearchPath = "STENCIL_PATH"

// searchPath returns the directories searched for source names: those given
// with WithSearchPath first, then those in $STENCIL_PATH.
func searchPath(ctx context.Context) []string {
	dirs, _ := ctx.Value(searchPathKey{}).([]string)

	joined := mung.Make(
		mung.WithSubjectItems(os.Getenv(EnvSearchPath)),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(dirs...),
	).String()

	return slices.DeleteFunc(filepath.SplitList(joined), func(dir string) bool {
		return dir == ""
	})
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}

// resolveSource returns the path of the named source. A name that is not an
// existing file is looked up in each search path directory, also with
// [pkg.Extension] appended if the name has no extension.
func resolveSource(ctx context.Context, name string) (string, error) {
	if isFile(name) {
		return name, nil
	}

	notFound := ErrSourceNotFound.With(slog.String("name", name))

	if filepath.IsAbs(name) {
		return "", notFound
	}

	candidates := []string{name}
	if filepath.Ext(name) == "" {
		candidates = append(candidates, name+pkg.Extension)
	}

	for _, dir := range searchPath(ctx) {
		for _, c := range candidates {
			path := filepath.Join(dir, c)
			if isFile(path) {
				log.TraceContext(ctx, "source resolved",
					slog.String("name", name),
					slog.String("path", path),
				)

				return path, nil
			}
		}
	}

	return "", notFound
}

// openSource opens the named source. An empty name reads the global --source
// inputs if any were given and stdin otherwise; "-" always reads stdin.
func openSource(ctx context.Context, name string) (io.ReadCloser, error) {
	switch name {
	case "":
		if srcs := sourceFilesFrom(ctx); srcs != nil {
			return io.NopCloser(srcs), nil
		}

		return io.NopCloser(os.Stdin), nil

	case stdinSource:
		return io.NopCloser(os.Stdin), nil
	}

	path, err := resolveSource(ctx, name)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, ErrReadSource.With(slog.String("path", path)).Wrap(err)
	}

	return file, nil
}

// loadStream reads the named source fully and returns a stream over it.
func loadStream(ctx context.Context, name string) (*lang.Stream, error) {
	r, err := openSource(ctx, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	stream := lang.NewStream(r, parseOptionsFrom(ctx)...)

	_, err = stream.Source(ctx)
	if err != nil {
		return nil, ErrReadSource.With(slog.String("name", name)).Wrap(err)
	}

	return stream, nil
}

// report logs every syntax error in doc. With strict set, any error fails
// the command.
func report(ctx context.Context, src string, doc *lang.Document, strict bool) error {
	errs := doc.Errors()

	for _, err := range errs {
		log.WarnContext(ctx, "syntax error",
			slog.Any("error", err),
			slog.String("snippet", err.Snippet(src)),
		)
	}

	if strict && len(errs) > 0 {
		return ErrInvalidSource.
			With(slog.Int("count", len(errs))).
			Wrap(doc.Err())
	}

	return nil
}

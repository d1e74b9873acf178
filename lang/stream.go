package lang

import (
	"context"
	"io"
	"iter"
	"log/slog"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// ErrComponentNotFound is returned by [Stream.Component] for unknown names.
var ErrComponentNotFound = NewError("component not found")

// documentCache stores parsed documents keyed by source hash and the options
// that change parse results.
var documentCache sync.Map

// Stream provides lazy access to the document and components parsed from a
// source. Sources with identical content share one parse.
type Stream struct {
	reader io.Reader
	source string
	opts   []Option

	once sync.Once
	doc  *Document
	err  error
}

// NewStream creates a streaming parser from an io.Reader.
// The reader is not consumed until first access.
func NewStream(r io.Reader, opts ...Option) *Stream {
	return &Stream{reader: r, opts: opts}
}

// NewStreamFromString creates a streaming parser from a source string.
func NewStreamFromString(source string, opts ...Option) *Stream {
	return &Stream{source: source, opts: opts}
}

// ensureParsed reads and parses the source once.
func (s *Stream) ensureParsed(ctx context.Context) error {
	s.once.Do(func() {
		if s.reader != nil {
			// Prefetch while earlier chunks are copied.
			ra := readahead.NewReader(s.reader)
			defer ra.Close()

			data, err := io.ReadAll(ra)
			if err != nil {
				s.err = ErrReadInput.Wrap(err).
					With(slog.String("source", "reader"))

				return
			}

			s.source = string(data)
		}

		var probe Parser

		applyOptions(&probe, s.opts...)

		key := strconv.FormatUint(xxh3.HashString(s.source), 36) +
			":" + strconv.FormatBool(probe.shared)

		if cached, ok := documentCache.Load(key); ok {
			s.doc = cached.(*Document)

			probe.logger.TraceContext(ctx, "document cache hit",
				slog.String("key", key))

			return
		}

		doc := ParseString(ctx, s.source, s.opts...)
		actual, _ := documentCache.LoadOrStore(key, doc)
		s.doc = actual.(*Document)
	})

	return s.err
}

// Source returns the source text, reading it first if necessary.
func (s *Stream) Source(ctx context.Context) (string, error) {
	err := s.ensureParsed(ctx)

	return s.source, err
}

// Document returns the parsed document.
func (s *Stream) Document(ctx context.Context) (*Document, error) {
	err := s.ensureParsed(ctx)
	if err != nil {
		return nil, err
	}

	return s.doc, nil
}

// Component retrieves a registered component by name.
func (s *Stream) Component(ctx context.Context, name string) (*Component, error) {
	err := s.ensureParsed(ctx)
	if err != nil {
		return nil, err
	}

	if comp, ok := s.doc.Components.Get(name); ok {
		return comp, nil
	}

	return nil, ErrComponentNotFound.With(slog.String("name", name))
}

// Components returns an iterator over the registered components in name
// order. If reading fails, the iterator yields no values.
func (s *Stream) Components(ctx context.Context) iter.Seq[*Component] {
	return func(yield func(*Component) bool) {
		if s.ensureParsed(ctx) != nil {
			return
		}

		for _, name := range s.doc.Components.Names() {
			if !yield(s.doc.Components[name]) {
				return
			}
		}
	}
}

// ClearCache removes all cached documents.
// This is primarily useful for testing or when memory needs to be reclaimed.
func ClearCache() {
	documentCache.Clear()
}

// Package multi fans a result log out to several sinks at once.
package multi

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/crimson-sun/runlog/internal/render"
	"github.com/crimson-sun/runlog/internal/resultlog"
)

// Multi delivers each Write to every wrapped sink. Sinks run concurrently;
// one sink failing does not stop delivery to the others. The log itself is
// read-only by the Renderer contract, so concurrent reads are safe. Each
// sink must own its destination; wrap sinks sharing a writer in a Stream.
type Multi struct {
	sinks []render.Sink
}

// New creates a Multi over the given sinks.
func New(sinks ...render.Sink) *Multi {
	return &Multi{sinks: sinks}
}

// Write renders the log into every sink, collecting all failures.
func (m *Multi) Write(ctx context.Context, log *resultlog.Log) error {
	g, ctx := errgroup.WithContext(ctx)
	errs := make([]error, len(m.sinks))
	for i, s := range m.sinks {
		i, s := i, s
		g.Go(func() error {
			errs[i] = s.Write(ctx, log)
			return nil
		})
	}
	g.Wait()
	return errors.Join(errs...)
}

// Close closes every sink, collecting errors.
func (m *Multi) Close() error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Stream renders through each renderer in order into one shared writer, one
// complete document after another. Renderers emit many small writes, so
// concurrent delivery onto a shared stream would interleave documents; a
// Stream counts as a single sink inside a Multi and keeps the stream whole.
type Stream struct {
	w         io.Writer
	renderers []render.Renderer
}

// NewStream creates a Stream over the given writer.
func NewStream(w io.Writer, renderers ...render.Renderer) *Stream {
	return &Stream{w: w, renderers: renderers}
}

// Write renders every document sequentially, stopping at the first failure.
func (s *Stream) Write(ctx context.Context, log *resultlog.Log) error {
	for _, r := range s.renderers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.Render(s.w, log); err != nil {
			return err
		}
	}
	return nil
}

// Close is a no-op; the Stream does not own its writer.
func (s *Stream) Close() error { return nil }

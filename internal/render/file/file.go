// Package file adapts a Renderer into a Sink that writes to a filesystem path.
package file

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/crimson-sun/runlog/internal/render"
	"github.com/crimson-sun/runlog/internal/resultlog"
)

const defaultBufSize = 64 * 1024 // 64KB

// Option configures a file Sink.
type Option func(*Sink)

// WithBufSize sets the bufio.Writer buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(s *Sink) { s.bufSize = bytes }
}

// Sink renders a result log to a file through the wrapped Renderer.
// The file is truncated on open: a run's document replaces any previous one.
type Sink struct {
	renderer render.Renderer
	w        *bufio.Writer
	f        *os.File
	path     string
	bufSize  int
}

// New creates a file Sink rendering through r to the given path.
func New(path string, r render.Renderer, opts ...Option) (*Sink, error) {
	s := &Sink{
		renderer: r,
		path:     path,
		bufSize:  defaultBufSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("file sink: open %s: %w", path, err)
	}
	s.f = f
	s.w = bufio.NewWriterSize(f, s.bufSize)
	return s, nil
}

// Write renders the log into the file.
func (s *Sink) Write(_ context.Context, log *resultlog.Log) error {
	if err := s.renderer.Render(s.w, log); err != nil {
		return fmt.Errorf("file sink: %w", err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (s *Sink) Close() error {
	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return fmt.Errorf("file sink: flush: %w", err)
	}
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("file sink: close: %w", err)
	}
	return nil
}

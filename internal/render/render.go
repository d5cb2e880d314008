// Package render defines the interfaces for result log renderers and sinks.
package render

import (
	"context"
	"io"

	"github.com/crimson-sun/runlog/internal/resultlog"
)

// Renderer serializes a result log to a writer. Renderers are pure functions
// of the current message sequence: they never mutate the log and have a
// defined output for every reachable state, including zero messages.
type Renderer interface {
	Render(w io.Writer, log *resultlog.Log) error
}

// Sink is a destination that owns a resource, e.g. an open file.
type Sink interface {
	Write(ctx context.Context, log *resultlog.Log) error
	Close() error
}

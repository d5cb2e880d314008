// Package console renders a result log as sectioned human-readable text.
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/crimson-sun/runlog/internal/model"
	"github.com/crimson-sun/runlog/internal/resultlog"
)

// Option configures a console Renderer.
type Option func(*Renderer)

// WithColor enables colored section headers. Off by default so piped
// output stays clean; the CLI turns it on when stdout is a terminal.
func WithColor(enabled bool) Option {
	return func(r *Renderer) { r.color = enabled }
}

// Renderer writes one section per non-empty category, each message as a
// "location: message" line. A log with no messages renders a single
// placeholder notice.
type Renderer struct {
	color bool
}

// New creates a console Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) Render(w io.Writer, log *resultlog.Log) error {
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("console render: %w", err)
	}

	if len(log.Messages()) == 0 {
		if _, err := fmt.Fprintln(w, "[No Messages]"); err != nil {
			return fmt.Errorf("console render: %w", err)
		}
	}

	header := fmt.Sprintf
	if r.color {
		header = color.New(color.Bold, color.FgCyan).Sprintf
	}

	for _, cat := range model.Categories() {
		messages := log.ByCategory(cat)
		if len(messages) == 0 {
			continue
		}
		h := header("=====| %s |===========", cat.UpperLabel())
		if _, err := fmt.Fprintln(w, h); err != nil {
			return fmt.Errorf("console render: %w", err)
		}
		for _, m := range messages {
			if _, err := fmt.Fprintf(w, "%s: %s\n", m.Location, m.Message); err != nil {
				return fmt.Errorf("console render: %w", err)
			}
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("console render: %w", err)
	}
	return nil
}

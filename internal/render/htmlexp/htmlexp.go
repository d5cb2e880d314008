// Package htmlexp renders a result log as an HTML fragment for embedding in
// a status page.
package htmlexp

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/crimson-sun/runlog/internal/model"
	"github.com/crimson-sun/runlog/internal/resultlog"
)

// timestampFormat is the fixed display format for the run start time.
const timestampFormat = "01/02/2006 15:04 MST"

// Option configures an HTML Renderer.
type Option func(*Renderer)

// AsFragment omits the outer <body> wrapper so the output can be spliced
// into an existing document.
func AsFragment() Option {
	return func(r *Renderer) { r.fragment = true }
}

// Renderer emits one block per non-empty category (heading plus a
// two-column table) inside a container div, followed by a timestamp line.
// The "container" and "timestamp" class names are hooks for the page
// template and must not change.
type Renderer struct {
	fragment bool
}

// New creates an HTML Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) Render(w io.Writer, log *resultlog.Log) error {
	var lines []string

	if !r.fragment {
		lines = append(lines, "  <body>")
	}

	lines = append(lines, `    <div class="container working-results">`)
	for _, cat := range model.Categories() {
		messages := log.ByCategory(cat)
		if len(messages) == 0 {
			continue
		}
		lines = append(lines, `    <div class="row">`)
		lines = append(lines, categoryBlock(cat, messages)...)
		lines = append(lines, "    </div>")
	}
	lines = append(lines, "    </div>")

	stamp := log.LoadedAt().Format(timestampFormat)
	lines = append(lines, fmt.Sprintf(`    <div class="timestamp">run against source at %s</div>`, stamp))

	if !r.fragment {
		lines = append(lines, "  </body>")
	}

	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("html render: %w", err)
	}
	return nil
}

// categoryBlock emits the heading and location/message table for one category.
func categoryBlock(cat model.Category, messages []model.Message) []string {
	lines := []string{
		fmt.Sprintf("  <h5>%s</h5>", cat.UpperLabel()),
		"<table>",
		"  <thead>",
		"    <tr><th>Location</th><th>Message</th></tr>",
		"  </thead>",
		"  <tbody>",
	}
	for _, m := range messages {
		lines = append(lines, fmt.Sprintf("    <tr><td>%s</td><td>%s</td></tr>",
			html.EscapeString(m.Location), html.EscapeString(m.Message)))
	}
	lines = append(lines, "  </tbody>", "</table>")
	return lines
}

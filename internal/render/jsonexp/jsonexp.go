// Package jsonexp renders a result log as the structured JSON document
// consumed by downstream tooling.
package jsonexp

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/crimson-sun/runlog/internal/model"
	"github.com/crimson-sun/runlog/internal/resultlog"
)

// entry mirrors one message on the wire. Field names are a compatibility
// contract; do not rename.
type entry struct {
	Category  string `json:"category"` // display label, not machine name
	Location  string `json:"location"`
	Message   string `json:"message"`
	MS        int    `json:"ms"`
	MessageID string `json:"message_id"`
}

// document carries one list per category. A struct rather than a map keeps
// the four keys present on every export, in declaration order.
type document struct {
	DataQuality []entry `json:"DATA_QUALITY"`
	DataSource  []entry `json:"DATA_SOURCE"`
	DataEntry   []entry `json:"DATA_ENTRY"`
	Internal    []entry `json:"INTERNAL"`
}

// Renderer writes the structured export with 2-space indentation.
type Renderer struct{}

// New creates a JSON Renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(w io.Writer, log *resultlog.Log) error {
	doc := document{
		DataQuality: entries(log, model.DataQuality),
		DataSource:  entries(log, model.DataSource),
		DataEntry:   entries(log, model.DataEntry),
		Internal:    entries(log, model.Internal),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("json render: %w", err)
	}
	return nil
}

// entries converts one category's messages, insertion order preserved.
// Returns an empty (non-nil) slice so empty categories marshal as [].
func entries(log *resultlog.Log, cat model.Category) []entry {
	messages := log.ByCategory(cat)
	out := make([]entry, 0, len(messages))
	for _, m := range messages {
		out = append(out, entry{
			Category:  m.Category.Label(),
			Location:  m.Location,
			Message:   m.Message,
			MS:        m.MS,
			MessageID: m.MessageID,
		})
	}
	return out
}

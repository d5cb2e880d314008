// Package csvexp renders a result log as a flat CSV table.
package csvexp

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/crimson-sun/runlog/internal/model"
	"github.com/crimson-sun/runlog/internal/resultlog"
)

var header = []string{"category", "location", "message", "ms"}

// Renderer flattens all messages into rows ordered by category declaration
// order, then insertion order within each category.
type Renderer struct{}

// New creates a CSV Renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(w io.Writer, log *resultlog.Log) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csv render: %w", err)
	}
	for _, cat := range model.Categories() {
		for _, m := range log.ByCategory(cat) {
			row := []string{cat.UpperLabel(), m.Location, m.Message, strconv.Itoa(m.MS)}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("csv render: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv render: %w", err)
	}
	return nil
}

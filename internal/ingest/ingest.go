// Package ingest feeds a result log from NDJSON input, one record per line.
package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/crimson-sun/runlog/internal/model"
	"github.com/crimson-sun/runlog/internal/resultlog"
)

// maxLineSize bounds a single NDJSON line (1MB).
const maxLineSize = 1024 * 1024

// ReadInto decodes NDJSON records from r and appends them to the log in
// order. Blank lines are skipped. The first bad line (malformed JSON,
// unknown category, missing message) aborts with its line number; records
// before it stay appended.
func ReadInto(log *resultlog.Log, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	n := 0
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var rec model.Record
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return n, fmt.Errorf("ingest: line %d: %w", line, err)
		}
		if err := log.AddRecord(rec); err != nil {
			return n, fmt.Errorf("ingest: line %d: %w", line, err)
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("ingest: %w", err)
	}
	return n, nil
}

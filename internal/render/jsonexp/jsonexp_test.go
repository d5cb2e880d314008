package jsonexp

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/crimson-sun/runlog/internal/resultlog"
)

func decode(t *testing.T, data []byte) map[string][]map[string]any {
	t.Helper()
	var m map[string][]map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	return m
}

func TestRenderAlwaysFourKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := New().Render(&buf, resultlog.New()); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	m := decode(t, buf.Bytes())
	if len(m) != 4 {
		t.Fatalf("expected 4 top-level keys, got %d", len(m))
	}
	for _, key := range []string{"DATA_QUALITY", "DATA_SOURCE", "DATA_ENTRY", "INTERNAL"} {
		list, ok := m[key]
		if !ok {
			t.Fatalf("missing key %s", key)
		}
		if list == nil {
			t.Fatalf("key %s must be an empty list, not null", key)
		}
		if len(list) != 0 {
			t.Fatalf("key %s: expected empty list, got %d entries", key, len(list))
		}
	}
}

func TestRenderEntryFields(t *testing.T) {
	l := resultlog.New()
	l.DataQuality("NY", "Looking kinda scary. > 50K")
	l.DataSource("TX", "We're missing stuff, find it")
	l.DataEntry("FL", "Let's Ignore It")

	var buf bytes.Buffer
	if err := New().Render(&buf, l); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	m := decode(t, buf.Bytes())
	dq := m["DATA_QUALITY"]
	if len(dq) != 1 {
		t.Fatalf("DATA_QUALITY: expected 1 entry, got %d", len(dq))
	}
	if dq[0]["location"] != "NY" {
		t.Errorf("location = %v, want NY", dq[0]["location"])
	}
	if dq[0]["category"] != "data quality" {
		t.Errorf("category = %v, want display label", dq[0]["category"])
	}
	if _, ok := dq[0]["ms"]; !ok {
		t.Error("entry missing ms field")
	}
	if _, ok := dq[0]["message_id"]; !ok {
		t.Error("entry missing message_id field")
	}
	if len(m["DATA_SOURCE"]) != 1 || m["DATA_SOURCE"][0]["location"] != "TX" {
		t.Errorf("DATA_SOURCE = %v", m["DATA_SOURCE"])
	}
	if len(m["DATA_ENTRY"]) != 1 || m["DATA_ENTRY"][0]["location"] != "FL" {
		t.Errorf("DATA_ENTRY = %v", m["DATA_ENTRY"])
	}
	if len(m["INTERNAL"]) != 0 {
		t.Errorf("INTERNAL should be empty, got %v", m["INTERNAL"])
	}
}

func TestRenderKeyOrderAndIndent(t *testing.T) {
	var buf bytes.Buffer
	if err := New().Render(&buf, resultlog.New()); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	out := buf.String()
	// Keys appear in category declaration order.
	order := []string{"DATA_QUALITY", "DATA_SOURCE", "DATA_ENTRY", "INTERNAL"}
	last := -1
	for _, key := range order {
		i := strings.Index(out, key)
		if i < 0 {
			t.Fatalf("missing key %s", key)
		}
		if i < last {
			t.Fatalf("key %s out of order", key)
		}
		last = i
	}
	if !strings.Contains(out, "  \"DATA_QUALITY\"") {
		t.Error("expected 2-space indentation")
	}
}

func TestRenderPreservesInsertionOrderWithinCategory(t *testing.T) {
	l := resultlog.New()
	l.Internal("", "first")
	l.Internal("", "second")
	l.Internal("", "third")

	var buf bytes.Buffer
	if err := New().Render(&buf, l); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	m := decode(t, buf.Bytes())
	in := m["INTERNAL"]
	if len(in) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(in))
	}
	for i, want := range []string{"first", "second", "third"} {
		if in[i]["message"] != want {
			t.Errorf("entry %d: message = %v, want %s", i, in[i]["message"], want)
		}
	}
}

package htmlexp

import (
	"strings"
	"testing"
	"time"

	"github.com/crimson-sun/runlog/internal/resultlog"
)

func testLog() *resultlog.Log {
	ts := time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)
	l := resultlog.New(resultlog.WithLoadedAt(ts))
	l.DataQuality("NY", "cases > 50K")
	return l
}

func TestRenderStructure(t *testing.T) {
	var buf strings.Builder
	if err := New().Render(&buf, testLog()); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"  <body>",
		`<div class="container working-results">`,
		`<div class="row">`,
		"<h5>DATA QUALITY</h5>",
		"<tr><th>Location</th><th>Message</th></tr>",
		"<tr><td>NY</td><td>cases &gt; 50K</td></tr>",
		`<div class="timestamp">run against source at 03/01/2026 08:30 UTC</div>`,
		"  </body>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderFragmentOmitsBody(t *testing.T) {
	var buf strings.Builder
	if err := New(AsFragment()).Render(&buf, testLog()); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "<body>") || strings.Contains(out, "</body>") {
		t.Fatalf("fragment must omit body wrapper:\n%s", out)
	}
	if !strings.Contains(out, `class="container working-results"`) {
		t.Fatal("fragment must keep the container hook")
	}
}

func TestRenderOmitsEmptyCategories(t *testing.T) {
	var buf strings.Builder
	if err := New().Render(&buf, testLog()); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "DATA SOURCE") || strings.Contains(out, "INTERNAL") {
		t.Fatalf("empty categories must be omitted:\n%s", out)
	}
	if got := strings.Count(out, `<div class="row">`); got != 1 {
		t.Fatalf("expected 1 row block, got %d", got)
	}
}

func TestRenderEmptyLogStillHasTimestamp(t *testing.T) {
	ts := time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)
	l := resultlog.New(resultlog.WithLoadedAt(ts))

	var buf strings.Builder
	if err := New().Render(&buf, l); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `class="timestamp"`) {
		t.Fatal("timestamp line must render even with zero messages")
	}
	if strings.Contains(out, "<h5>") {
		t.Fatal("zero messages must render no category blocks")
	}
}

func TestRenderEscapesMarkup(t *testing.T) {
	l := resultlog.New()
	l.DataEntry("<script>", `say "hi" & bye`)

	var buf strings.Builder
	if err := New().Render(&buf, l); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "<script>") {
		t.Fatal("location must be escaped")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("expected escaped location in:\n%s", out)
	}
	if !strings.Contains(out, "&amp; bye") {
		t.Fatalf("expected escaped message in:\n%s", out)
	}
}

package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crimson-sun/runlog/internal/render/csvexp"
	"github.com/crimson-sun/runlog/internal/resultlog"
)

func TestWriteRendersToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	sink, err := New(path, csvexp.New())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	l := resultlog.New()
	l.DataQuality("NY", "scary")

	if err := sink.Write(context.Background(), l); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "category,location,message,ms") {
		t.Fatalf("missing header in %q", out)
	}
	if !strings.Contains(out, "DATA QUALITY,NY,scary") {
		t.Fatalf("missing row in %q", out)
	}
}

func TestWriteTruncatesPreviousDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	if err := os.WriteFile(path, []byte("stale contents from an earlier run\n"), 0644); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	sink, err := New(path, csvexp.New())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if err := sink.Write(context.Background(), resultlog.New()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	sink.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "stale") {
		t.Fatalf("previous contents must be truncated: %q", string(data))
	}
}

func TestNewBadPath(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "no", "such", "dir", "x"), csvexp.New()); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

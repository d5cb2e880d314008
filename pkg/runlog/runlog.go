package runlog

import (
	"bytes"
	"io"
	"time"

	"github.com/crimson-sun/runlog/internal/model"
	"github.com/crimson-sun/runlog/internal/render/console"
	"github.com/crimson-sun/runlog/internal/render/csvexp"
	"github.com/crimson-sun/runlog/internal/render/htmlexp"
	"github.com/crimson-sun/runlog/internal/render/jsonexp"
	"github.com/crimson-sun/runlog/internal/resultlog"
)

// ErrMissingMessage is returned by AddRecord when the message field is
// absent. An empty message is allowed; a missing one is not.
var ErrMissingMessage = resultlog.ErrMissingMessage

// Log is an ordered, append-only collection of result messages for one run.
// Create one per run, record throughout, optionally Consolidate, then
// render. Not safe for concurrent use.
type Log struct {
	inner *resultlog.Log
}

// New creates an empty Log, capturing the run start timestamp.
func New(opts ...Option) *Log {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Log{inner: resultlog.New(o.inner...)}
}

// LoadedAt returns the run start timestamp.
func (l *Log) LoadedAt() time.Time {
	return l.inner.LoadedAt()
}

// Add records one message under the given category, stamping it with the
// processor time consumed since the previous message.
func (l *Log) Add(cat Category, location, message string, opts ...AddOption) {
	var o addOptions
	for _, opt := range opts {
		opt(&o)
	}
	l.inner.Add(model.Category(cat), location, message, resultlog.GroupBy(o.messageID))
}

// AddRecord records a message from its wire form. A nil Message field
// fails with ErrMissingMessage and records nothing.
func (l *Log) AddRecord(rec Record) error {
	return l.inner.AddRecord(model.Record{
		Category:  rec.Category,
		Location:  rec.Location,
		Message:   rec.Message,
		MessageID: rec.MessageID,
	})
}

// DataQuality records a data-quality message.
func (l *Log) DataQuality(location, message string, opts ...AddOption) {
	l.Add(DataQuality, location, message, opts...)
}

// DataSource records a data-source message.
func (l *Log) DataSource(location, message string, opts ...AddOption) {
	l.Add(DataSource, location, message, opts...)
}

// DataEntry records a data-entry message.
func (l *Log) DataEntry(location, message string, opts ...AddOption) {
	l.Add(DataEntry, location, message, opts...)
}

// Internal records an internal diagnostic message.
func (l *Log) Internal(location, message string, opts ...AddOption) {
	l.Add(Internal, location, message, opts...)
}

// Consolidate collapses groups of more than GroupLimit messages sharing a
// grouping key into a single summarized message. Typically called once,
// before rendering.
func (l *Log) Consolidate() {
	l.inner.Consolidate()
}

// Messages returns the full ordered message sequence.
func (l *Log) Messages() []Message {
	return convert(l.inner.Messages())
}

// ByCategory returns the messages of one category in insertion order.
func (l *Log) ByCategory(cat Category) []Message {
	return convert(l.inner.ByCategory(model.Category(cat)))
}

// Print writes the console rendering to w.
func (l *Log) Print(w io.Writer) error {
	return console.New().Render(w, l.inner)
}

// JSON returns the structured export: one key per category, each an
// ordered list of message records.
func (l *Log) JSON() ([]byte, error) {
	return renderBytes(jsonexp.New(), l.inner)
}

// CSV returns the tabular export, rows ordered by category then insertion.
func (l *Log) CSV() ([]byte, error) {
	return renderBytes(csvexp.New(), l.inner)
}

// HTML returns the markup export. With fragment set, the outer document
// wrapper is omitted so the result can be spliced into an existing page.
func (l *Log) HTML(fragment bool) ([]byte, error) {
	var opts []htmlexp.Option
	if fragment {
		opts = append(opts, htmlexp.AsFragment())
	}
	return renderBytes(htmlexp.New(opts...), l.inner)
}

type renderer interface {
	Render(w io.Writer, log *resultlog.Log) error
}

func renderBytes(r renderer, log *resultlog.Log) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, log); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func convert(in []model.Message) []Message {
	out := make([]Message, len(in))
	for i, m := range in {
		out[i] = messageFromModel(m)
	}
	return out
}

// Package resultlog collects categorized result messages for a single run.
package resultlog

import (
	"errors"
	"fmt"
	"time"

	"fortio.org/safecast"

	"github.com/crimson-sun/runlog/internal/model"
	"github.com/crimson-sun/runlog/internal/proctime"
)

// ErrMissingMessage is returned by AddRecord when the message field is
// absent. An empty message is allowed; a missing one is not.
var ErrMissingMessage = errors.New("missing message")

// DefaultGroupLimit is the consolidation threshold: groups with strictly
// more members than this collapse into a single summarized message.
const DefaultGroupLimit = 10

// Log is an ordered, append-only collection of result messages for one run.
//
// A Log is not safe for concurrent use: Add mutates the sequence and the
// internal time cursor without locking. Callers that record from multiple
// goroutines must serialize access themselves.
type Log struct {
	loadedAt   time.Time
	clock      func() time.Duration
	cursor     time.Duration
	groupLimit int
	messages   []model.Message
}

// Option configures a Log at construction.
type Option func(*Log)

// WithClock replaces the processor-time source. Tests use this to script
// deterministic elapsed values.
func WithClock(fn func() time.Duration) Option {
	return func(l *Log) { l.clock = fn }
}

// WithLoadedAt overrides the run start timestamp captured by New.
func WithLoadedAt(t time.Time) Option {
	return func(l *Log) { l.loadedAt = t }
}

// WithGroupLimit overrides the consolidation threshold. Default: 10.
func WithGroupLimit(n int) Option {
	return func(l *Log) {
		if n > 0 {
			l.groupLimit = n
		}
	}
}

// New creates an empty Log for a run, capturing the start timestamp and
// priming the processor-time cursor.
func New(opts ...Option) *Log {
	l := &Log{
		loadedAt:   time.Now(),
		clock:      proctime.Now,
		groupLimit: DefaultGroupLimit,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.cursor = l.clock()
	return l
}

// LoadedAt returns the run start timestamp. Display only.
func (l *Log) LoadedAt() time.Time {
	return l.loadedAt
}

// Messages returns the ordered message sequence. The slice is shared;
// callers must treat it as read-only.
func (l *Log) Messages() []model.Message {
	return l.messages
}

// ByCategory returns the messages of one category in insertion order.
func (l *Log) ByCategory(cat model.Category) []model.Message {
	var out []model.Message
	for _, m := range l.messages {
		if m.Category == cat {
			out = append(out, m)
		}
	}
	return out
}

// AddOption configures a single recorded message.
type AddOption func(*model.Message)

// GroupBy tags the message with a grouping key for consolidation.
// An empty id leaves the message ungrouped.
func GroupBy(id string) AddOption {
	return func(m *model.Message) { m.MessageID = id }
}

// Add appends one message, stamping it with the processor time consumed
// since the previous Add (or since New for the first call), truncated to
// whole milliseconds. The cursor resets on every call, so deltas are always
// relative to the previous message, never cumulative.
func (l *Log) Add(cat model.Category, location, message string, opts ...AddOption) {
	now := l.clock()
	delta := now - l.cursor
	l.cursor = now

	ms, err := safecast.Conv[int](delta.Milliseconds())
	if err != nil || ms < 0 {
		ms = 0
	}

	m := model.Message{
		Category: cat,
		Location: location,
		Message:  message,
		MS:       ms,
	}
	for _, opt := range opts {
		opt(&m)
	}
	l.messages = append(l.messages, m)
}

// Restore appends a previously recorded message verbatim, keeping its
// elapsed marker instead of stamping a new one. Snapshot loading uses this.
func (l *Log) Restore(m model.Message) {
	l.messages = append(l.messages, m)
}

// AddRecord appends a message decoded from its wire form. A nil Message
// field fails with ErrMissingMessage and appends nothing; an unknown
// category is likewise rejected without a partial append.
func (l *Log) AddRecord(rec model.Record) error {
	if rec.Message == nil {
		return ErrMissingMessage
	}
	cat, err := model.ParseCategory(rec.Category)
	if err != nil {
		return fmt.Errorf("add record: %w", err)
	}
	l.Add(cat, rec.Location, *rec.Message, GroupBy(rec.MessageID))
	return nil
}

// DataQuality records a data-quality message.
func (l *Log) DataQuality(location, message string, opts ...AddOption) {
	l.Add(model.DataQuality, location, message, opts...)
}

// DataSource records a data-source message.
func (l *Log) DataSource(location, message string, opts ...AddOption) {
	l.Add(model.DataSource, location, message, opts...)
}

// DataEntry records a data-entry message.
func (l *Log) DataEntry(location, message string, opts ...AddOption) {
	l.Add(model.DataEntry, location, message, opts...)
}

// Internal records an internal diagnostic message.
func (l *Log) Internal(location, message string, opts ...AddOption) {
	l.Add(model.Internal, location, message, opts...)
}

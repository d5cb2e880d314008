package runlog

import (
	"time"

	"github.com/crimson-sun/runlog/internal/resultlog"
)

type options struct {
	inner []resultlog.Option
}

// Option configures a Log at construction.
type Option func(*options)

// WithGroupLimit overrides the consolidation threshold: groups with
// strictly more members than the limit collapse. Default: 10.
func WithGroupLimit(n int) Option {
	return func(o *options) {
		o.inner = append(o.inner, resultlog.WithGroupLimit(n))
	}
}

// WithLoadedAt overrides the run start timestamp, which is otherwise
// captured at New. Display only.
func WithLoadedAt(t time.Time) Option {
	return func(o *options) {
		o.inner = append(o.inner, resultlog.WithLoadedAt(t))
	}
}

// AddOption configures a single recorded message.
type AddOption func(*addOptions)

type addOptions struct {
	messageID string
}

// GroupBy tags the message with a grouping key for consolidation.
// An empty id leaves the message ungrouped.
func GroupBy(id string) AddOption {
	return func(o *addOptions) { o.messageID = id }
}

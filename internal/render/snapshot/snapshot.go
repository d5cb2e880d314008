// Package snapshot serializes a full run to a compact msgpack payload, so a
// run recorded on one machine can be rendered elsewhere later.
package snapshot

import (
	"fmt"
	"io"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/crimson-sun/runlog/internal/model"
	"github.com/crimson-sun/runlog/internal/resultlog"
)

// payload is the on-disk shape. Bump Version on incompatible changes.
type payload struct {
	Version  int
	LoadedAt time.Time
	Messages []model.Message
}

const version = 1

// Renderer encodes the log as a msgpack snapshot.
type Renderer struct{}

// New creates a snapshot Renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(w io.Writer, log *resultlog.Log) error {
	p := payload{
		Version:  version,
		LoadedAt: log.LoadedAt(),
		Messages: log.Messages(),
	}
	if err := msgpack.NewEncoder(w).Encode(p); err != nil {
		return fmt.Errorf("snapshot encode: %w", err)
	}
	return nil
}

// Decode reads a snapshot back into a fresh Log. The elapsed markers are
// restored as recorded; the clock cursor starts from the current process.
func Decode(rd io.Reader, opts ...resultlog.Option) (*resultlog.Log, error) {
	var p payload
	if err := msgpack.NewDecoder(rd).Decode(&p); err != nil {
		return nil, fmt.Errorf("snapshot decode: %w", err)
	}
	if p.Version != version {
		return nil, fmt.Errorf("snapshot decode: unsupported version %d", p.Version)
	}

	opts = append(opts, resultlog.WithLoadedAt(p.LoadedAt))
	log := resultlog.New(opts...)
	for _, m := range p.Messages {
		log.Restore(m)
	}
	return log, nil
}

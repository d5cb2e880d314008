package runlog

import "github.com/crimson-sun/runlog/internal/model"

// Category classifies a result message. Exactly four values exist, in
// fixed display order.
type Category int

const (
	DataQuality Category = iota
	DataSource
	DataEntry
	Internal
)

// Key returns the stable machine name, e.g. "DATA_QUALITY".
func (c Category) Key() string {
	return model.Category(c).Key()
}

// Label returns the human display label, e.g. "data quality".
func (c Category) Label() string {
	return model.Category(c).Label()
}

func (c Category) String() string {
	return model.Category(c).String()
}

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{DataQuality, DataSource, DataEntry, Internal}
}

// Message is a recorded result. This is the stable public type; internal
// representations may evolve independently without breaking consumers.
type Message struct {
	Category  Category
	Location  string
	Message   string
	MS        int    // processor-time delta since the previous message, whole ms
	MessageID string // grouping key; "" = never consolidated
}

// Record is the wire form of a message, as found in NDJSON input. Message
// is a pointer so an absent field is distinguishable from an empty string.
type Record struct {
	Category  string  `json:"category"`
	Location  string  `json:"location"`
	Message   *string `json:"message"`
	MessageID string  `json:"message_id,omitempty"`
}

// messageFromModel converts the internal message to the public type.
func messageFromModel(m model.Message) Message {
	return Message{
		Category:  Category(m.Category),
		Location:  m.Location,
		Message:   m.Message,
		MS:        m.MS,
		MessageID: m.MessageID,
	}
}

package model

// Message is one recorded result: a categorized, timed diagnostic produced
// during a run. Messages are immutable once appended; consolidation replaces
// the sequence rather than editing entries in place.
type Message struct {
	Category  Category
	Location  string // free-text origin tag, e.g. a region code
	Message   string
	MS        int    // processor-time delta since the previous message, whole ms
	MessageID string // grouping key for consolidation; "" = never group
}

// Record is the wire form of a message as it appears in NDJSON input.
// Message is a pointer so a missing key is distinguishable from an empty
// string: absent is an error, empty is allowed.
type Record struct {
	Category  string  `json:"category"`
	Location  string  `json:"location"`
	Message   *string `json:"message"`
	MessageID string  `json:"message_id,omitempty"`
}

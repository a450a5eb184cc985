package mailqueue

import (
	"maps"
	"time"
)

// Priority orders messages for delivery: high > normal > low.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"

	// PriorityDefault is applied when the caller leaves priority empty.
	PriorityDefault = PriorityNormal
)

// Valid checks if the priority is one of the recognized values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityNormal, PriorityLow:
		return true
	}
	return false
}

// rank maps priorities onto a comparable scale for ordering.
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityNormal:
		return 1
	default:
		return 0
	}
}

// Message is a unit of outbound email awaiting delivery.
type Message struct {
	ID        string            `json:"id"`
	Recipient string            `json:"recipient"`
	Subject   string            `json:"subject"`
	BodyHTML  string            `json:"body_html,omitempty"`
	BodyText  string            `json:"body_text,omitempty"`
	Priority  Priority          `json:"priority"`
	Metadata  map[string]string `json:"metadata,omitempty"`

	// Attempts counts failed delivery attempts; only the retry path moves it.
	Attempts int `json:"attempts"`

	// ScheduledFor delays eligibility for dequeue. Nil means immediately due.
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`

	// EnqueuedAt is set once at creation and never changes, including across
	// retries. It is the FIFO tie-breaker among equal priorities.
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// due reports whether the message is eligible for dequeue at the given time.
func (m *Message) due(now time.Time) bool {
	return m.ScheduledFor == nil || !m.ScheduledFor.After(now)
}

// clone returns a deep copy that shares no mutable state with the original.
func (m *Message) clone() Message {
	out := *m
	out.Metadata = maps.Clone(m.Metadata)
	if m.ScheduledFor != nil {
		t := *m.ScheduledFor
		out.ScheduledFor = &t
	}
	return out
}

// EnqueueParams describes a message to enqueue. Content fields are opaque to
// the queue; Metadata is passed through unchanged and never interpreted.
type EnqueueParams struct {
	Recipient    string
	Subject      string
	BodyHTML     string
	BodyText     string
	Priority     Priority
	Metadata     map[string]string
	ScheduledFor *time.Time
}

// Stats is a point-in-time summary of the pending queue.
type Stats struct {
	Pending    int
	ByPriority map[Priority]int

	// OldestEnqueuedAt is the earliest EnqueuedAt among pending messages,
	// nil when the queue is empty.
	OldestEnqueuedAt *time.Time
}

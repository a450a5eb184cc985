package mailqueue

import (
	"maps"
	"slices"
	"sync"
	"time"
)

// RateGate is the queue's read-only view of the send history ledger. Dequeue
// consults it before inspecting any pending message.
type RateGate interface {
	CanSendNow() bool
}

// SendRecorder accepts notification that a send actually completed. It is the
// write side of the ledger, used by the delivery dispatcher.
type SendRecorder interface {
	RecordSent(recipient string)
}

// Queue holds not-yet-delivered messages ordered by priority (descending)
// then EnqueuedAt (ascending). The order is maintained at insertion, so a
// retried message keeps its fairness position among same-priority peers.
//
// All mutating operations serialize on a single mutex; two concurrent Dequeue
// calls can never return the same message.
type Queue struct {
	mu    sync.Mutex
	items []*Message

	gate           RateGate
	maxAttempts    int
	retryBaseDelay time.Duration
}

// NewQueue creates an empty queue gated by the given ledger view.
func NewQueue(gate RateGate, opts ...QueueOption) (*Queue, error) {
	if gate == nil {
		return nil, ErrRateGateNil
	}

	options := &queueOptions{
		maxAttempts:    DefaultMaxAttempts,
		retryBaseDelay: DefaultRetryBaseDelay,
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Queue{
		gate:           gate,
		maxAttempts:    options.maxAttempts,
		retryBaseDelay: options.retryBaseDelay,
	}, nil
}

// Enqueue validates params, builds a message with a fresh id, and inserts it
// at its ordered position. Returns the new message id for correlation.
func (q *Queue) Enqueue(params EnqueueParams) (string, error) {
	if params.Recipient == "" {
		return "", ErrRecipientRequired
	}
	if params.Subject == "" {
		return "", ErrSubjectRequired
	}
	if params.BodyHTML == "" && params.BodyText == "" {
		return "", ErrBodyRequired
	}

	priority := params.Priority
	if priority == "" {
		priority = PriorityDefault
	}
	if !priority.Valid() {
		return "", ErrInvalidPriority
	}

	now := time.Now()
	msg := &Message{
		ID:         newMessageID(now),
		Recipient:  params.Recipient,
		Subject:    params.Subject,
		BodyHTML:   params.BodyHTML,
		BodyText:   params.BodyText,
		Priority:   priority,
		Metadata:   maps.Clone(params.Metadata),
		Attempts:   0,
		EnqueuedAt: now,
	}
	if params.ScheduledFor != nil {
		t := *params.ScheduledFor
		msg.ScheduledFor = &t
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.insertLocked(msg)
	return msg.ID, nil
}

// Dequeue removes and returns the next deliverable message, or nil.
//
// The rate gate is consulted first; when blocked the queue is not scanned at
// all. Otherwise the first due message in order is removed and returned.
// Messages scheduled for the future are skipped over, not removed, so a
// delayed item never shadows a currently-due one. The scan and removal happen
// as one step under the queue mutex.
func (q *Queue) Dequeue() *Message {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.gate.CanSendNow() {
		return nil
	}

	now := time.Now()
	for i, msg := range q.items {
		if msg.due(now) {
			q.items = slices.Delete(q.items, i, i+1)
			return msg
		}
	}
	return nil
}

// RequeueForRetry increments the attempt count and either reinserts the
// message with a retry delay or drops it once attempts are exhausted.
//
// A positive delay is honored as given; otherwise the default backoff applies
// (base delay scaled by the attempt count). The message keeps its original
// EnqueuedAt, so it does not lose its FIFO position among same-priority
// peers. Returns false when the message was dropped; the caller owns any
// terminal failure reporting.
func (q *Queue) RequeueForRetry(msg *Message, delay time.Duration) bool {
	if msg == nil {
		return false
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	msg.Attempts++
	if msg.Attempts >= q.maxAttempts {
		return false
	}

	if delay <= 0 {
		delay = q.retryBaseDelay * time.Duration(msg.Attempts)
	}
	t := time.Now().Add(delay)
	msg.ScheduledFor = &t

	q.insertLocked(msg)
	return true
}

// Stats reports the pending count, per-priority breakdown, and the oldest
// pending EnqueuedAt. All three priority keys are always present.
func (q *Queue) Stats() Stats {
	q.mu.Lock()
	defer q.mu.Unlock()

	stats := Stats{
		Pending: len(q.items),
		ByPriority: map[Priority]int{
			PriorityHigh:   0,
			PriorityNormal: 0,
			PriorityLow:    0,
		},
	}

	for _, msg := range q.items {
		stats.ByPriority[msg.Priority]++
		if stats.OldestEnqueuedAt == nil || msg.EnqueuedAt.Before(*stats.OldestEnqueuedAt) {
			t := msg.EnqueuedAt
			stats.OldestEnqueuedAt = &t
		}
	}
	return stats
}

// Snapshot returns a copy of the pending messages in queue order. Mutating
// the result never affects the live queue.
func (q *Queue) Snapshot() []Message {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Message, len(q.items))
	for i, msg := range q.items {
		out[i] = msg.clone()
	}
	return out
}

// Clear drops all pending messages, including ones waiting out a retry delay.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = nil
}

// insertLocked places msg after every message of strictly higher priority and
// after every same-priority message with an earlier EnqueuedAt. Caller must
// hold the mutex.
func (q *Queue) insertLocked(msg *Message) {
	idx := len(q.items)
	for i, existing := range q.items {
		if msg.Priority.rank() > existing.Priority.rank() ||
			(msg.Priority.rank() == existing.Priority.rank() && msg.EnqueuedAt.Before(existing.EnqueuedAt)) {
			idx = i
			break
		}
	}
	q.items = slices.Insert(q.items, idx, msg)
}

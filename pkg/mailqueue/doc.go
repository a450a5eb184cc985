// Package mailqueue provides an in-memory, priority-ordered delivery queue
// for outbound email, gated by a sliding-window rate limit and with bounded
// retry.
//
// The package is organised around two main components:
//
//   - Queue      — holds pending messages in priority order and releases them
//     through the rate gate
//   - Dispatcher — polls the queue, performs transport via a Sender, and
//     reports outcomes back (ledger on success, retry scheduling on failure)
//
// The queue couples to the send history ledger only through two small
// interfaces: RateGate (read side, consulted by Dequeue) and SendRecorder
// (write side, used by the dispatcher after a successful send). Any
// implementation of those can stand in; sendlog.Ledger satisfies both.
//
// # Ordering
//
// Pending messages are ordered by priority (high > normal > low) with FIFO as
// the tie-break among equal priorities. The order is maintained at insertion
// time. A message scheduled for the future is skipped over during Dequeue —
// scheduling is an eligibility filter, never a sort key — so a delayed
// low-priority message cannot block a due high-priority one, and vice versa.
// Retried messages keep their original EnqueuedAt and therefore their
// fairness position.
//
// # Rate limiting
//
// Dequeue consults the RateGate before inspecting the queue; when the gate is
// closed it returns nil immediately without scanning. Rate-limit blocking is
// a normal steady-state condition, not an error: poll again, or wait until
// the ledger's NextAvailableAt.
//
// # Retry
//
// A failed delivery goes back through RequeueForRetry, which increments the
// attempt counter and reinserts the message with a ScheduledFor in the
// future. Once attempts reach the configured maximum (default 3) the message
// is dropped from the queue silently; terminal failure reporting belongs to
// the caller (the Dispatcher exposes a DropHandler for it).
//
// # Usage
//
//	ledger := sendlog.New()
//	q, err := mailqueue.NewQueue(ledger)
//	if err != nil {
//	    return err
//	}
//
//	id, err := q.Enqueue(mailqueue.EnqueueParams{
//	    Recipient: "user@example.com",
//	    Subject:   "Welcome!",
//	    BodyHTML:  htmlContent,
//	    Priority:  mailqueue.PriorityHigh,
//	})
//
// With the provided dispatcher as the consumer loop:
//
//	d, err := mailqueue.NewDispatcher(q, ledger, sender,
//	    mailqueue.WithPollInterval(time.Second),
//	)
//	if err != nil {
//	    return err
//	}
//	if err := d.Start(ctx); err != nil {
//	    return err
//	}
//	defer d.Stop()
//
// # Error Handling
//
// Package-level sentinel errors (e.g. ErrInvalidPriority,
// ErrRecipientRequired) signal caller mistakes at the enqueue boundary and
// can be checked with errors.Is. Dequeue returning nil is not an error; it
// means empty, nothing due, or rate-blocked.
//
// The queue is a single-process scheduling structure: no disk persistence, no
// cross-process sharing. It is intended to sit in front of a slow,
// rate-limited transport, not to replace a durable broker.
package mailqueue

package mailqueue

import "time"

const (
	// DefaultMaxAttempts is the total delivery attempts before a message is dropped.
	DefaultMaxAttempts = 3

	// DefaultRetryBaseDelay is the base retry delay, scaled by the attempt count.
	DefaultRetryBaseDelay = 30 * time.Second
)

// QueueOption is a functional option for configuring a Queue
type QueueOption func(*queueOptions)

type queueOptions struct {
	maxAttempts    int
	retryBaseDelay time.Duration
}

// WithMaxAttempts sets how many delivery attempts a message gets before it is
// permanently dropped. Non-positive values are ignored.
func WithMaxAttempts(n int) QueueOption {
	return func(o *queueOptions) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

// WithRetryBaseDelay sets the base delay used when RequeueForRetry is called
// without an explicit delay. Non-positive values are ignored.
func WithRetryBaseDelay(d time.Duration) QueueOption {
	return func(o *queueOptions) {
		if d > 0 {
			o.retryBaseDelay = d
		}
	}
}

package mailqueue

import (
	"log/slog"
	"time"
)

// DispatcherOption is a functional option for configuring a Dispatcher
type DispatcherOption func(*dispatcherOptions)

type dispatcherOptions struct {
	pollInterval  time.Duration
	sendTimeout   time.Duration
	retryDelay    time.Duration
	maxConcurrent int
	logger        *slog.Logger
	onDrop        DropHandler
}

// WithPollInterval sets how often the dispatcher checks the queue
func WithPollInterval(d time.Duration) DispatcherOption {
	return func(o *dispatcherOptions) {
		if d > 0 {
			o.pollInterval = d
		}
	}
}

// WithSendTimeout bounds how long a single transport attempt may take
func WithSendTimeout(d time.Duration) DispatcherOption {
	return func(o *dispatcherOptions) {
		if d > 0 {
			o.sendTimeout = d
		}
	}
}

// WithRetryDelay sets a fixed delay for retries scheduled by the dispatcher.
// When unset, the queue's default backoff applies.
func WithRetryDelay(d time.Duration) DispatcherOption {
	return func(o *dispatcherOptions) {
		if d > 0 {
			o.retryDelay = d
		}
	}
}

// WithMaxConcurrent sets the maximum number of in-flight sends
func WithMaxConcurrent(n int) DispatcherOption {
	return func(o *dispatcherOptions) {
		if n > 0 {
			o.maxConcurrent = n
		}
	}
}

// WithLogger sets the logger for the dispatcher
func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(o *dispatcherOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDropHandler registers a callback for messages dropped after exhausting
// their delivery attempts, e.g. to write a permanent-failure audit record.
func WithDropHandler(h DropHandler) DispatcherOption {
	return func(o *dispatcherOptions) {
		if h != nil {
			o.onDrop = h
		}
	}
}

package mailqueue

import "errors"

// Common errors
var (
	// ErrRateGateNil is returned when a nil rate gate is provided
	ErrRateGateNil = errors.New("rate gate cannot be nil")

	// ErrQueueNil is returned when a nil queue is provided to the dispatcher
	ErrQueueNil = errors.New("queue cannot be nil")

	// ErrRecorderNil is returned when a nil send recorder is provided to the dispatcher
	ErrRecorderNil = errors.New("send recorder cannot be nil")

	// ErrSenderNil is returned when a nil sender is provided to the dispatcher
	ErrSenderNil = errors.New("sender cannot be nil")

	// ErrInvalidPriority is returned when an unrecognized priority is supplied
	ErrInvalidPriority = errors.New("priority must be high, normal, or low")

	// ErrRecipientRequired is returned when a message has no recipient
	ErrRecipientRequired = errors.New("recipient is required")

	// ErrSubjectRequired is returned when a message has no subject
	ErrSubjectRequired = errors.New("subject is required")

	// ErrBodyRequired is returned when a message has neither an HTML nor a text body
	ErrBodyRequired = errors.New("message body is required")
)

package email

import (
	"context"
	"fmt"
	"regexp"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string            `json:"send_to"`             // Email address of the recipient
	Subject  string            `json:"subject"`             // Subject of the email
	BodyHTML string            `json:"body_html,omitempty"` // HTML body of the email
	BodyText string            `json:"body_text,omitempty"` // Plain-text body of the email
	Tag      string            `json:"tag,omitempty"`       // Optional, for analytics
	Metadata map[string]string `json:"metadata,omitempty"`  // Optional, passed through to the provider
}

// emailRegex is a pragmatic address check, not a full RFC 5322 parser.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks the params for the minimum a provider needs to accept the
// message: a plausible recipient address, a subject, and at least one body.
func (p SendEmailParams) Validate() error {
	if p.SendTo == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(p.SendTo) {
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
	}
	if p.Subject == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if p.BodyHTML == "" && p.BodyText == "" {
		return fmt.Errorf("%w: either BodyHTML or BodyText is required", ErrInvalidParams)
	}
	return nil
}

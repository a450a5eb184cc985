package email

import (
	"context"

	"github.com/ergohq/mailroom/pkg/mailqueue"
)

// QueueSender adapts an EmailSender to the mailqueue.Sender interface, so any
// provider implementation can serve as the dispatcher's transport.
type QueueSender struct {
	sender EmailSender
}

// NewQueueSender wraps an EmailSender for use with mailqueue.Dispatcher.
func NewQueueSender(sender EmailSender) *QueueSender {
	return &QueueSender{sender: sender}
}

// Send implements mailqueue.Sender. The message id travels as the provider
// tag, and queue metadata is passed through unchanged.
func (s *QueueSender) Send(ctx context.Context, msg mailqueue.Message) error {
	return s.sender.SendEmail(ctx, SendEmailParams{
		SendTo:   msg.Recipient,
		Subject:  msg.Subject,
		BodyHTML: msg.BodyHTML,
		BodyText: msg.BodyText,
		Tag:      msg.ID,
		Metadata: msg.Metadata,
	})
}

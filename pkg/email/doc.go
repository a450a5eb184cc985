// Package email provides a provider-agnostic interface for sending
// transactional email, with a Postmark implementation for production and a
// file-drop sender for local development.
//
// The package is built around the EmailSender interface so providers can be
// swapped without touching application code:
//   - PostmarkClient delivers through Postmark's transactional API
//   - DevSender writes each message to a JSON file on disk
//
// All implementations validate parameters before sending and report failures
// through the package's sentinel errors (ErrInvalidConfig, ErrInvalidParams,
// ErrFailedToSendEmail), checkable with errors.Is.
//
// # Usage
//
//	cfg := email.Config{
//	    PostmarkServerToken:  "server-token",
//	    PostmarkAccountToken: "account-token",
//	    SenderEmail:          "noreply@example.com",
//	    ReplyToEmail:         "support@example.com",
//	}
//
//	client, err := email.NewPostmarkClient(cfg)
//	if err != nil {
//	    return err
//	}
//
//	err = client.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "user@example.com",
//	    Subject:  "Welcome!",
//	    BodyHTML: htmlContent,
//	})
//
// QueueSender bridges any EmailSender into the delivery queue's dispatcher:
//
//	sender := email.NewQueueSender(client)
//	d, err := mailqueue.NewDispatcher(q, ledger, sender)
//
// Use MustNewPostmarkClient when wiring at startup to fail fast on bad
// configuration.
package email

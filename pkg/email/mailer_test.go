package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ergohq/mailroom/pkg/email"
)

func TestSendEmailParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  email.SendEmailParams
		wantErr bool
	}{
		{
			name: "valid html email",
			params: email.SendEmailParams{
				SendTo:   "user@example.com",
				Subject:  "Hi",
				BodyHTML: "<p>hello</p>",
			},
		},
		{
			name: "valid text-only email",
			params: email.SendEmailParams{
				SendTo:   "user@example.com",
				Subject:  "Hi",
				BodyText: "hello",
			},
		},
		{
			name: "missing recipient",
			params: email.SendEmailParams{
				Subject:  "Hi",
				BodyText: "hello",
			},
			wantErr: true,
		},
		{
			name: "malformed recipient",
			params: email.SendEmailParams{
				SendTo:   "not-an-address",
				Subject:  "Hi",
				BodyText: "hello",
			},
			wantErr: true,
		},
		{
			name: "missing subject",
			params: email.SendEmailParams{
				SendTo:   "user@example.com",
				BodyText: "hello",
			},
			wantErr: true,
		},
		{
			name: "missing both bodies",
			params: email.SendEmailParams{
				SendTo:  "user@example.com",
				Subject: "Hi",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.params.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, email.ErrInvalidParams)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPostmarkClient(t *testing.T) {
	t.Parallel()

	valid := email.Config{
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		SenderEmail:          "noreply@example.com",
		ReplyToEmail:         "support@example.com",
	}

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		client, err := email.NewPostmarkClient(valid)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("missing tokens or addresses", func(t *testing.T) {
		t.Parallel()

		for name, mutate := range map[string]func(*email.Config){
			"no server token":  func(c *email.Config) { c.PostmarkServerToken = "" },
			"no account token": func(c *email.Config) { c.PostmarkAccountToken = "" },
			"no sender":        func(c *email.Config) { c.SenderEmail = "" },
			"bad sender":       func(c *email.Config) { c.SenderEmail = "oops" },
			"no reply-to":      func(c *email.Config) { c.ReplyToEmail = "" },
		} {
			t.Run(name, func(t *testing.T) {
				cfg := valid
				mutate(&cfg)
				client, err := email.NewPostmarkClient(cfg)
				assert.ErrorIs(t, err, email.ErrInvalidConfig)
				assert.Nil(t, client)
			})
		}
	})

	t.Run("must variant panics on invalid config", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			email.MustNewPostmarkClient(email.Config{})
		})
	})
}

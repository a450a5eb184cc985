package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements EmailSender for local development. Instead of talking
// to a provider it drops each message as a JSON file into a directory, where
// it can be inspected or asserted against in tests.
type DevSender struct {
	dir string
}

// NewDevSender creates a development email sender that writes messages to
// dir. The directory is created on first send if it doesn't exist.
func NewDevSender(dir string) EmailSender {
	return &DevSender{dir: dir}
}

// devMessage is the on-disk shape of a dropped message.
type devMessage struct {
	SentAt   string            `json:"sent_at"`
	SendTo   string            `json:"send_to"`
	Subject  string            `json:"subject"`
	BodyHTML string            `json:"body_html,omitempty"`
	BodyText string            `json:"body_text,omitempty"`
	Tag      string            `json:"tag,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// SendEmail writes the message to a timestamped JSON file in the configured
// directory.
func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	now := time.Now()
	name := fmt.Sprintf("%s_%s.json", now.Format("2006_01_02_150405.000"), safeFilename(params.Subject))

	data, err := json.MarshalIndent(devMessage{
		SentAt:   now.Format(time.RFC3339),
		SendTo:   params.SendTo,
		Subject:  params.Subject,
		BodyHTML: params.BodyHTML,
		BodyText: params.BodyText,
		Tag:      params.Tag,
		Metadata: params.Metadata,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrFailedToSendEmail, err)
	}

	if err := os.WriteFile(filepath.Join(d.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write message file: %v", ErrFailedToSendEmail, err)
	}

	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// safeFilename turns an arbitrary subject line into a filesystem-safe name.
func safeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")

	const maxLen = 80
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}

package email

// Config holds email transport configuration.
// Postmark tokens are optional to support development environments where real
// sending is disabled (use DevSender there). SenderEmail establishes the From
// identity and ReplyToEmail the reply-to behavior for all outbound mail.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	ReplyToEmail         string `env:"REPLY_TO_EMAIL,required"`
}

package mailqueue

import "time"

// Config holds the configuration for the delivery queue and dispatcher
type Config struct {
	MaxAttempts    int           `env:"EMAIL_MAX_ATTEMPTS" envDefault:"3"`
	RetryBaseDelay time.Duration `env:"EMAIL_RETRY_BASE_DELAY" envDefault:"30s"`
	PollInterval   time.Duration `env:"EMAIL_POLL_INTERVAL" envDefault:"5s"`
	SendTimeout    time.Duration `env:"EMAIL_SEND_TIMEOUT" envDefault:"1m"`
	MaxConcurrent  int           `env:"EMAIL_MAX_CONCURRENT_SENDS" envDefault:"1"`
}

package sendlog

// Config holds the ledger limits for environment-driven setup.
type Config struct {
	HourlyLimit int `env:"EMAIL_HOURLY_LIMIT" envDefault:"100"`
	DailyLimit  int `env:"EMAIL_DAILY_LIMIT" envDefault:"1000"`
}

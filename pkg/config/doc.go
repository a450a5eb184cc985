// Package config loads application configuration from environment variables
// into annotated Go structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`: the
// default .env file is loaded once per process (missing files are fine), then
// the environment is parsed into any struct carrying `env` tags.
//
//	type TransportConfig struct {
//		SenderEmail string `env:"SENDER_EMAIL,required"`
//	}
//
//	var cfg TransportConfig
//	config.MustLoad(&cfg)
package config

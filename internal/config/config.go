package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config application configuration
type Config struct {
	// Telegram
	TelegramToken string `env:"TELEGRAM_BOT_TOKEN,required"`
	AdminID       int64  `env:"ADMIN_ID,required"`

	// Keep-alive HTTP port for the hosting platform
	Port int `env:"PORT" envDefault:"8080"`

	// Mailbox provider
	APIBaseURL    string        `env:"TEMPMAIL_API_URL" envDefault:"https://www.1secmail.com/api/v1/"`
	DefaultDomain string        `env:"DEFAULT_DOMAIN" envDefault:"1secmail.com"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`

	// Delay before the one-shot inbox check after mailbox creation
	NotifyDelay time.Duration `env:"NOTIFY_DELAY" envDefault:"5s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"` // "json" or "text"
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.NotifyDelay <= 0 {
		return nil, fmt.Errorf("NOTIFY_DELAY must be positive, got %s", cfg.NotifyDelay)
	}
	if cfg.DefaultDomain == "" {
		return nil, fmt.Errorf("DEFAULT_DOMAIN must not be empty")
	}

	return cfg, nil
}

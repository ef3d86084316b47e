package quote

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the quote service settings, read from the environment (a
// local .env file is honored when present).
type Config struct {
	URL     string        `env:"QUOTE_API_URL" envDefault:"https://query1.finance.yahoo.com"`
	Token   string        `env:"QUOTE_API_TOKEN"`
	Timeout time.Duration `env:"QUOTE_API_TIMEOUT" envDefault:"10s"`
	Debug   bool          `env:"QUOTE_API_DEBUG" envDefault:"false"`
}

// LoadConfig reads the quote configuration from .env and the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse quote config: %w", err)
	}
	return cfg, nil
}

package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Exchange rate provider
	ExchangeAPIURL      string
	ExchangeAPIKey      string
	ExchangeHTTPTimeout time.Duration

	// Rate limiting, ulule/limiter formatted (e.g. "100-M")
	RateLimit string

	// CORS
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("EXCHANGE_API_URL", "https://api.currencyapi.com/v3/latest")
	viper.SetDefault("EXCHANGE_API_KEY", "")
	viper.SetDefault("EXCHANGE_HTTP_TIMEOUT", "5s")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.ExchangeAPIURL = viper.GetString("EXCHANGE_API_URL")
	cfg.ExchangeAPIKey = viper.GetString("EXCHANGE_API_KEY")
	if cfg.ExchangeAPIKey == "" {
		log.Println("Warning: EXCHANGE_API_KEY not set. Currency conversion will be rejected by the provider.")
	}

	// Bound the outbound rate lookup; the provider contract has no timeout of its own.
	timeoutStr := viper.GetString("EXCHANGE_HTTP_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 5 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for EXCHANGE_HTTP_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.ExchangeHTTPTimeout = timeout

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	return cfg, nil
}

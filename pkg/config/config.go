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

	// Rate provider
	ExchangeRatesAPIURL string
	ExchangeRatesKey    string
	ProviderTimeout     time.Duration

	// Refresh / quoting policy
	RefreshInterval time.Duration // staleness interval between refresh cycles
	QuoteValidity   time.Duration // how long an issued quote stays retrievable
	RefreshCronSpec string        // cron spec for the in-process refresh tick

	// HTTP
	QuoteRateLimit   int64 // quote creations allowed per client IP per minute
	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("EXCHANGE_RATES_API_URL", "https://api.exchangeratesapi.io/v1/latest")
	viper.SetDefault("EXCHANGE_RATES_KEY", "")
	viper.SetDefault("EXCHANGE_RATES_REFRESH", 3600) // seconds
	viper.SetDefault("QUOTE_VALIDITY", 60)           // seconds
	viper.SetDefault("PROVIDER_TIMEOUT", "10s")
	viper.SetDefault("REFRESH_CRON_SPEC", "@every 1m")
	viper.SetDefault("QUOTE_RATE_LIMIT", 60)
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.ExchangeRatesAPIURL = viper.GetString("EXCHANGE_RATES_API_URL")
	cfg.ExchangeRatesKey = viper.GetString("EXCHANGE_RATES_KEY")
	if cfg.ExchangeRatesKey == "" {
		log.Println("Warning: EXCHANGE_RATES_KEY not set. Rate refresh will be skipped until configured.")
	}

	providerTimeoutStr := viper.GetString("PROVIDER_TIMEOUT")
	providerTimeout, err := time.ParseDuration(providerTimeoutStr)
	if err != nil || providerTimeout <= 0 {
		providerTimeout = 10 * time.Second
		if providerTimeoutStr != "" && err != nil {
			log.Printf("Warning: Invalid value for PROVIDER_TIMEOUT ('%s'). Defaulting to %s.\n", providerTimeoutStr, providerTimeout)
		}
	}
	cfg.ProviderTimeout = providerTimeout

	refreshSeconds := viper.GetInt("EXCHANGE_RATES_REFRESH")
	if refreshSeconds <= 0 {
		refreshSeconds = 3600
		log.Printf("Warning: EXCHANGE_RATES_REFRESH must be positive. Defaulting to %d seconds.\n", refreshSeconds)
	}
	cfg.RefreshInterval = time.Duration(refreshSeconds) * time.Second

	validitySeconds := viper.GetInt("QUOTE_VALIDITY")
	if validitySeconds <= 0 {
		validitySeconds = 60
		log.Printf("Warning: QUOTE_VALIDITY must be positive. Defaulting to %d seconds.\n", validitySeconds)
	}
	cfg.QuoteValidity = time.Duration(validitySeconds) * time.Second

	cfg.RefreshCronSpec = viper.GetString("REFRESH_CRON_SPEC")

	cfg.QuoteRateLimit = viper.GetInt64("QUOTE_RATE_LIMIT")
	if cfg.QuoteRateLimit <= 0 {
		cfg.QuoteRateLimit = 60
	}

	cfg.CORSAllowOrigins = viper.GetStringSlice("CORS_ALLOW_ORIGINS")
	if len(cfg.CORSAllowOrigins) == 0 {
		cfg.CORSAllowOrigins = []string{"*"}
	}

	return cfg, nil
}

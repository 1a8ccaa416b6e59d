package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	RateLimit       string        // ulule/limiter format, e.g. "300-M"
	SeqLockTimeout  time.Duration // Bound on sequence counter lock waits
	CORSAllowOrigin string
}

// LoadConfig loads configuration from environment variables, reading a .env
// file first when present.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("SEQUENCE_LOCK_TIMEOUT_MS", 3000)
	v.SetDefault("CORS_ALLOW_ORIGIN", "*")

	dbURL := v.GetString("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return &Config{
		DatabaseURL:     dbURL,
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		RateLimit:       v.GetString("RATE_LIMIT"),
		SeqLockTimeout:  time.Duration(v.GetInt("SEQUENCE_LOCK_TIMEOUT_MS")) * time.Millisecond,
		CORSAllowOrigin: v.GetString("CORS_ALLOW_ORIGIN"),
	}, nil
}

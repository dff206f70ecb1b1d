package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr     string
	Env      string
	LogLevel string

	// Upstream POS backend (catalog + purchase endpoints)
	APIBase         string
	UpstreamTimeout time.Duration

	// Register identity sent with every purchase
	StoreCode   string
	POSID       string
	CashierCode string // may be blank; the purchase service substitutes its default

	// Local sales journal (sqlite). Empty disables journaling.
	JournalDSN string
}

// Load reads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (loaded by main) > default.
func Load() Config {
	return Config{
		Addr:            getEnv("POS_ADDR", ":8080"),
		Env:             getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		APIBase:         getEnv("CATALOG_API_BASE", "http://127.0.0.1:8000"),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		StoreCode:       getEnv("STORE_CODE", "30"),
		POSID:           getEnv("POS_ID", "90"),
		CashierCode:     os.Getenv("CASHIER_CODE"),
		JournalDSN:      getEnv("JOURNAL_DSN", "file:pos-journal.db"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}

// internal/config/config.go
package config

import (
	"os"
	"strconv"
)

// Config holds the environment toggles the mock understands. The frontend
// docs describe these as the switches for local development.
type Config struct {
	Port        string
	UseMock     bool
	MockDelayMS int
	QueueURL    string
	JournalSize int
}

// Load reads the toggles from the environment. Missing or malformed values
// fall back to defaults so the mock always starts.
func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		UseMock:     getBool("USE_MOCK", true),
		MockDelayMS: getInt("MOCK_DELAY_MS", 0),
		QueueURL:    os.Getenv("QUEUE_URL"),
		JournalSize: getInt("JOURNAL_SIZE", 200),
	}
	if cfg.JournalSize < 1 {
		cfg.JournalSize = 200
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

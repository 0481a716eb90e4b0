// Package config holds runtime defaults, optionally overridden from a .env
// file or DOCSUM_* environment variables. Command flags take precedence over
// both.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the tunable defaults for both commands.
type Config struct {
	// TopWords is the size of the analyzer's most-frequent-words ranking.
	TopWords int
	// KeywordCount is how many RAKE phrases the analyzer reports.
	KeywordCount int
	// SummarySentences is the default summary length.
	SummarySentences int
	// LogFile is where the rotating run log is written.
	LogFile string
}

// Load returns the configuration: built-in defaults, then .env (if present),
// then the process environment. A missing .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		TopWords:         10,
		KeywordCount:     8,
		SummarySentences: 3,
		LogFile:          ".docsum/docsum.log",
	}
	cfg.TopWords = intEnv("DOCSUM_TOP_WORDS", cfg.TopWords)
	cfg.KeywordCount = intEnv("DOCSUM_KEYWORDS", cfg.KeywordCount)
	cfg.SummarySentences = intEnv("DOCSUM_SUMMARY_SENTENCES", cfg.SummarySentences)
	if v := os.Getenv("DOCSUM_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	return cfg
}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

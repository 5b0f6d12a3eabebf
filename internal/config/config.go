package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	SourceLanguage string
	BatchSize      int
	TranslateURL   string
	HTTPTimeout    time.Duration
	// DatabaseURL enables the PostgreSQL symbol cache when non-empty.
	DatabaseURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		SourceLanguage: getEnv("SOURCE_LANG", "de"),
		BatchSize:      getEnvInt("BATCH_SIZE", 100),
		TranslateURL:   getEnv("TRANSLATE_URL", "https://translate.googleapis.com"),
		HTTPTimeout:    time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 120)) * time.Second,
		DatabaseURL:    getEnv("DATABASE_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
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

package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const devJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port            string
	Env             string
	LogLevel        slog.Level
	DatabaseDriver  string
	DatabaseDSN     string
	JWTSecret       string
	JWTExpiry       time.Duration
	FingerprintKey  string
	RateLimitRPS    float64
	RateLimitBurst  int
	GeneratorSecure bool
}

func Load() Config {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		LogLevel:        getLevel("LOG_LEVEL", slog.LevelInfo),
		DatabaseDriver:  getEnv("DATABASE_DRIVER", "sqlite"),
		DatabaseDSN:     getEnv("DATABASE_DSN", "passgen.db"),
		JWTSecret:       getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry:       getDuration("JWT_EXPIRY", 24*time.Hour),
		RateLimitRPS:    getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:  getInt("RATE_LIMIT_BURST", 10),
		GeneratorSecure: getBool("GENERATOR_SECURE", false),
	}
	cfg.FingerprintKey = getEnv("FINGERPRINT_KEY", cfg.JWTSecret)

	if cfg.IsProduction() && cfg.JWTSecret == devJWTSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

// IsProduction reports whether the service runs in the production environment.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// NewLogger builds the process logger: JSON in production, text elsewhere.
func (c Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("invalid number, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func getLevel(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
		slog.Warn("invalid log level, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return level
}

// Package config handles application configuration and environment loading.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// MySQLConfig holds the connection settings shared by all three demo
// databases. The database name itself is chosen per request.
type MySQLConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	MaxConns int
}

/// Addr returns the host:port pair for the MySQL server.
func (m *MySQLConfig) Addr() string {
	return m.Host + ":" + m.Port
}

// LLMConfig holds settings for the hosted completion service.
type LLMConfig struct {
	Provider string // "groq" (default), "openai", or "huggingface"
	APIKey   string
	BaseURL  string // override for OpenAI-compatible endpoints
	Model    string
	Timeout  time.Duration
}

// Config holds the full application configuration.
type Config struct {
	ListenAddr         string
	LogLevel           string
	CORSAllowedOrigins []string

	// ReadOnly rejects generated statements containing destructive
	// keywords before execution. Off by default: the generated SQL is
	// otherwise passed to the database as-is.
	ReadOnly bool

	// MaxRows caps how many rows the UI renders per result set.
	MaxRows int

	// SampleRows is how many rows per table to append to the schema
	// context sent to the model. Zero disables sampling.
	SampleRows int

	MySQL MySQLConfig
	LLM   LLMConfig
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadFromEnv loads configuration from environment variables, applying the
// defaults the application shipped with.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		LogLevel:   os.Getenv("LOG_LEVEL"),
		ReadOnly:   strings.EqualFold(os.Getenv("READ_ONLY"), "true"),
		MaxRows:    parseIntEnvDefault("MAX_ROWS", 200),
		SampleRows: parseIntEnvDefault("SCHEMA_SAMPLE_ROWS", 3),
		MySQL: MySQLConfig{
			Host:     envDefault("MYSQL_HOST", "127.0.0.1"),
			Port:     envDefault("MYSQL_PORT", "3306"),
			User:     envDefault("MYSQL_USER", "root"),
			Password: os.Getenv("MYSQL_PASSWORD"),
			MaxConns: parseIntEnvDefault("MYSQL_MAX_CONNS", 10),
		},
		LLM: LLMConfig{
			Provider: strings.ToLower(envDefault("LLM_PROVIDER", "groq")),
			BaseURL:  os.Getenv("LLM_BASE_URL"),
			Model:    os.Getenv("LLM_MODEL"),
			Timeout:  30 * time.Second,
		},
	}

	port := envDefault("PORT", "8080")
	if strings.Contains(port, ":") {
		cfg.ListenAddr = port
	} else {
		cfg.ListenAddr = ":" + port
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		cfg.LLM.Timeout = d
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORSAllowedOrigins = origins
	} else {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	switch cfg.LLM.Provider {
	case "groq":
		cfg.LLM.APIKey = os.Getenv("GROQ_API_KEY")
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	case "huggingface":
		cfg.LLM.APIKey = os.Getenv("API_KEY")
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q (want groq, openai, or huggingface)", cfg.LLM.Provider)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.MySQL.Password == "" {
		return fmt.Errorf("MYSQL_PASSWORD is not set; add it to your .env file")
	}
	if c.LLM.APIKey == "" {
		switch c.LLM.Provider {
		case "groq":
			return fmt.Errorf("GROQ_API_KEY is not set; add it to your .env file")
		case "openai":
			return fmt.Errorf("OPENAI_API_KEY is not set; add it to your .env file")
		default:
			return fmt.Errorf("API_KEY is not set; add it to your .env file")
		}
	}
	return nil
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseIntEnvDefault(key string, fallback int) int {
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

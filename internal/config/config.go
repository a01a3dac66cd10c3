// apps/go-solver/internal/config/config.go
//
// Process configuration.
// Layers, lowest precedence first:
//   1. Built-in defaults (Default).
//   2. Optional YAML file (SOLVER_CONFIG or --config).
//   3. Environment variables, usually loaded from .env by godotenv in main.

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port         string        `yaml:"port"`
	LogLevel     string        `yaml:"log_level"`
	DBPath       string        `yaml:"db_path"`
	WordsFile    string        `yaml:"words_file"`
	DailySalt    string        `yaml:"daily_salt"`
	JWTSecret    string        `yaml:"jwt_secret"`
	SessionTTL   time.Duration `yaml:"session_ttl"`
	MaxGuesses   int           `yaml:"max_guesses"`
	OpeningGuess string        `yaml:"opening_guess"`
	RemoveSolved bool          `yaml:"remove_solved"`
	ClientOrigin string        `yaml:"client_origin"`
}

// Default returns the development configuration.
func Default() Config {
	return Config{
		Port:         "5175",
		LogLevel:     "info",
		DBPath:       "./data/solver.db",
		DailySalt:    "local_dev_salt",
		JWTSecret:    "dev_secret_change_me",
		SessionTTL:   30 * time.Minute,
		MaxGuesses:   0,
		ClientOrigin: "http://localhost:5173",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when path is
// empty) and the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Port = getEnv("PORT", c.Port)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.DBPath = getEnv("DB_PATH", c.DBPath)
	c.WordsFile = getEnv("WORDS_FILE", c.WordsFile)
	c.DailySalt = getEnv("DAILY_SALT", c.DailySalt)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.OpeningGuess = strings.ToLower(getEnv("OPENING_GUESS", c.OpeningGuess))
	c.ClientOrigin = getEnv("CLIENT_ORIGIN", c.ClientOrigin)

	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SESSION_TTL: %w", err)
		}
		c.SessionTTL = d
	}
	if v := os.Getenv("MAX_GUESSES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MAX_GUESSES: %w", err)
		}
		c.MaxGuesses = n
	}
	if v := os.Getenv("REMOVE_SOLVED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("REMOVE_SOLVED: %w", err)
		}
		c.RemoveSolved = b
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

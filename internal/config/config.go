// Package config loads process configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Config is the process configuration.
type Config struct {
	Addr        string
	LogLevel    string
	Storage     string
	SQLitePath  string
	DatabaseURL string
	CORSOrigins []string

	MaxCalorie     int
	CoefP          float64
	PlausibleFloor float64
	CalPerGram     float64
}

// Load reads the given .env files (".env" when none is given) into the
// environment, then builds a Config from it. Missing files are ignored and
// variables already set in the environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a variable lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	c := Config{
		Addr:        env("NUTRISEC_ADDR", ":8080"),
		LogLevel:    env("NUTRISEC_LOG_LEVEL", "info"),
		SQLitePath:  env("NUTRISEC_SQLITE_PATH", "nutrisec.db"),
		DatabaseURL: env("DATABASE_URL", ""),
		CORSOrigins: splitList(env("NUTRISEC_CORS_ORIGINS", "*")),
	}

	defaultStorage := StorageSQLite
	if c.DatabaseURL != "" {
		defaultStorage = StoragePostgres
	}
	c.Storage = strings.ToLower(env("NUTRISEC_STORAGE", defaultStorage))
	switch c.Storage {
	case StorageMemory, StorageSQLite:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return Config{}, errors.New("DATABASE_URL is required for postgres storage")
		}
	default:
		return Config{}, fmt.Errorf("NUTRISEC_STORAGE must be %q, %q or %q", StorageMemory, StorageSQLite, StoragePostgres)
	}

	var err error
	if c.MaxCalorie, err = strconv.Atoi(env("NUTRISEC_MAX_CALORIE", "2700")); err != nil || c.MaxCalorie <= 0 {
		return Config{}, errors.New("NUTRISEC_MAX_CALORIE must be a positive integer")
	}
	if c.CoefP, err = positiveFloat(env("NUTRISEC_COEF_P", "3.0")); err != nil {
		return Config{}, fmt.Errorf("NUTRISEC_COEF_P: %w", err)
	}
	if c.PlausibleFloor, err = positiveFloat(env("NUTRISEC_PLAUSIBLE_FLOOR", "0.85")); err != nil {
		return Config{}, fmt.Errorf("NUTRISEC_PLAUSIBLE_FLOOR: %w", err)
	}
	if c.CalPerGram, err = positiveFloat(env("NUTRISEC_CAL_PER_GRAM", "7.5")); err != nil {
		return Config{}, fmt.Errorf("NUTRISEC_CAL_PER_GRAM: %w", err)
	}
	return c, nil
}

func positiveFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if f <= 0 {
		return 0, fmt.Errorf("must be > 0, got %v", f)
	}
	return f, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Package config loads aes256d settings from .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvListen   = "AES256D_LISTEN"
	EnvMaxBody  = "AES256D_MAX_BODY"
	EnvKeyFile  = "AES256D_KEY_FILE"
	EnvLogLevel = "AES256D_LOG_LEVEL"
)

// Defaults applied when a variable is unset.
const (
	DefaultListen  = "127.0.0.1:8256"
	DefaultMaxBody = 1 << 20
)

type Config struct {
	Listen   string
	MaxBody  int64
	KeyFile  string
	LogLevel slog.Level
}

// Load reads the given .env files (".env" if none are named) into the process
// environment and builds a Config from it. Missing files are skipped; variables
// already set in the environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg := Config{
		Listen:   DefaultListen,
		MaxBody:  DefaultMaxBody,
		KeyFile:  os.Getenv(EnvKeyFile),
		LogLevel: slog.LevelInfo,
	}

	if v := os.Getenv(EnvListen); v != "" {
		cfg.Listen = v
	}

	if v := os.Getenv(EnvMaxBody); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("config: %s must be a positive integer, got %q", EnvMaxBody, v)
		}
		cfg.MaxBody = n
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvLogLevel, err)
		}
	}

	return cfg, nil
}

// ReadKey returns the key stored in path with surrounding whitespace removed.
func ReadKey(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("config: read key: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTMDBBaseURL  = "https://api.themoviedb.org/3"
	defaultImageBaseURL = "https://image.tmdb.org/t/p"
	defaultLanguage     = "en-US"
)

type Config struct {
	Port            int           `yaml:"port"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	TMDB            TMDBConfig    `yaml:"tmdb"`
	Log             LogConfig     `yaml:"log"`
}

type TMDBConfig struct {
	APIKey       string `yaml:"api_key"`
	BaseURL      string `yaml:"base_url"`
	ImageBaseURL string `yaml:"image_base_url"`
	Language     string `yaml:"language"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func defaults() *Config {
	return &Config{
		Port:            8080,
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		TMDB: TMDBConfig{
			BaseURL:      defaultTMDBBaseURL,
			ImageBaseURL: defaultImageBaseURL,
			Language:     defaultLanguage,
		},
		Log: LogConfig{Level: "info", Format: "console"},
	}
}

// Load configuration from an optional YAML file, then env
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.Port = getEnvInt("PORT", cfg.Port)
	cfg.RequestTimeout = getEnvDuration("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.TMDB.APIKey = getEnv("TMDB_API_KEY", cfg.TMDB.APIKey)
	cfg.TMDB.BaseURL = getEnv("TMDB_BASE_URL", cfg.TMDB.BaseURL)
	cfg.TMDB.ImageBaseURL = getEnv("TMDB_IMAGE_BASE_URL", cfg.TMDB.ImageBaseURL)
	cfg.TMDB.Language = getEnv("TMDB_LANGUAGE", cfg.TMDB.Language)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)

	return cfg, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.TMDB.APIKey == "" {
		return errors.New("missing TMDB API key (set TMDB_API_KEY)")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.TMDB.BaseURL == "" {
		return errors.New("missing TMDB base URL")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return fallback
}

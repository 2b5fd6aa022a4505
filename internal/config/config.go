package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration.
// Populated from environment variables, with development defaults.
type Config struct {
	App       AppConfig
	Redis     RedisConfig
	Portfolio PortfolioConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	WebDir      string // static page shell; empty or missing dir disables it
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
	Stream   string // append-only contact message log
}

// PortfolioConfig carries the data-driven rules that used to be literals
// buried in the render code: the employer pinned to the top of the work
// history and the GitLab account whose projects are merged into the feed.
type PortfolioConfig struct {
	PinnedEmployer string
	GitHubAPIURL   string
	GitLabAPIURL   string
	GitLabUsername string
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Portfolio API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			WebDir:      getEnv("APP_WEB_DIR", "./web"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Stream:   getEnv("REDIS_MESSAGE_STREAM", "messages"),
		},
		Portfolio: PortfolioConfig{
			PinnedEmployer: getEnv("PINNED_EMPLOYER", "mekari"),
			GitHubAPIURL:   getEnv("GITHUB_API_URL", "https://api.github.com"),
			GitLabAPIURL:   getEnv("GITLAB_API_URL", "https://gitlab.com/api/v4"),
			GitLabUsername: getEnv("GITLAB_USERNAME", "dwiheruwaspodo"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the loaded config for obvious misconfiguration.
func (c *Config) Validate() error {
	if c.App.Port == "" {
		return fmt.Errorf("APP_PORT must not be empty")
	}
	if c.Redis.Stream == "" {
		return fmt.Errorf("REDIS_MESSAGE_STREAM must not be empty")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

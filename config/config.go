package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"squadbot/database"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string
	GuildID      string // Optional: restrict command registration to one guild

	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
				instance.DiscordToken = "test-token"
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		GuildID:      os.Getenv("GUILD_ID"),

		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.DatabaseName != "" && strings.TrimSpace(config.DatabaseName) == "" {
			return nil, fmt.Errorf("DATABASE_NAME cannot be empty when provided")
		}
	}

	return config, nil
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment: "test",
	}
}

// Package config loads the seed runner's YAML configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	e "github.com/gartstein/obotseed/internal/seed/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when SEED_CONFIG is not set.
const DefaultPath = "internal/seed/config/config.yaml"

// Config struct for YAML configuration
type Config struct {
	DBDriver         string        `yaml:"DB_DRIVER"`
	DBHost           string        `yaml:"DB_HOST"`
	DBPort           int           `yaml:"DB_PORT"`
	DBUser           string        `yaml:"DB_USER"`
	DBPassword       string        `yaml:"DB_PASSWORD"`
	DBName           string        `yaml:"DB_NAME"`
	DBSSLMode        string        `yaml:"DB_SSLMODE"`
	DBPath           string        `yaml:"DB_PATH"`
	DBConnectTimeout time.Duration `yaml:"DB_CONNECT_TIMEOUT"`
	RandomSeed       uint64        `yaml:"RANDOM_SEED"`
	BcryptCost       int           `yaml:"BCRYPT_COST"`
	LogLevel         string        `yaml:"LOG_LEVEL"`
	KafkaBrokers     []string      `yaml:"KAFKA_BROKERS"`
	Topic            string        `yaml:"TOPIC"`
}

// Path returns the configuration file location.
func Path() string {
	if p := os.Getenv("SEED_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(file)
}

// Parse decodes raw YAML, applies defaults and validates the result.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	c.DBDriver = strings.ToLower(c.DBDriver)
	if c.DBDriver == "" {
		c.DBDriver = "postgres"
	}
	if c.DBPort == 0 {
		c.DBPort = 5432
	}
	if c.DBSSLMode == "" {
		c.DBSSLMode = "disable"
	}
	if c.DBConnectTimeout == 0 {
		c.DBConnectTimeout = 30 * time.Second
	}
	if c.RandomSeed == 0 {
		c.RandomSeed = 1
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Topic == "" {
		c.Topic = "seed.events"
	}
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "postgres":
		if c.DBHost == "" || c.DBName == "" {
			return fmt.Errorf("%w: postgres requires DB_HOST and DB_NAME", e.ErrInvalidInput)
		}
	case "sqlite":
		if c.DBPath == "" {
			return fmt.Errorf("%w: sqlite requires DB_PATH", e.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unsupported DB_DRIVER %q", e.ErrInvalidInput, c.DBDriver)
	}
	return nil
}

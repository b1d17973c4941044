package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/wondercard/pkg/trainer"
)

// EnvPrefix prefixes every environment override, e.g. WONDERCARD_PORT
const EnvPrefix = "WONDERCARD_"

// Config represents the wondercard configuration
type Config struct {
	DataDir   string       `yaml:"data_dir" env:"DATA_DIR"`
	Port      int          `yaml:"port" env:"PORT"`
	Bind      string       `yaml:"bind" env:"BIND"`
	Security  Security     `yaml:"security" envPrefix:"SECURITY_"`
	Logging   Logging      `yaml:"logging" envPrefix:"LOG_"`
	Trainer   trainer.Info `yaml:"trainer" envPrefix:"TRAINER_"`
	Generator Generator    `yaml:"generator" envPrefix:"GENERATOR_"`
}

// Security contains security-related configuration
type Security struct {
	APIKey        string `yaml:"api_key" env:"API_KEY"`
	MaxRecordSize int    `yaml:"max_record_size" env:"MAX_RECORD_SIZE"`
}

// Logging contains logging configuration
type Logging struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

// Generator configures creature generation
type Generator struct {
	// Seed fixes the random source; 0 seeds from the clock
	Seed uint64 `yaml:"seed" env:"SEED"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		DataDir: "./data",
		Port:    8080,
		Bind:    "127.0.0.1",
		Security: Security{
			APIKey:        "auto",
			MaxRecordSize: 4096,
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
		Trainer: trainer.Default(),
	}
}

// Validate checks the values a server or generator depends on
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.Security.MaxRecordSize < 0 {
		return fmt.Errorf("max_record_size must not be negative")
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("unknown logging format %q", c.Logging.Format)
	}
	if err := c.Trainer.Validate(); err != nil {
		return fmt.Errorf("invalid trainer: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from WONDERCARD_* environment variables
func ApplyEnv(config *Config) error {
	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// LoadConfig loads configuration from the specified path over the defaults,
// then applies environment overrides
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := ApplyEnv(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// 0600, the file holds the api key
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateSecureKey generates a cryptographically secure random key
func GenerateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// BootstrapConfig creates a new configuration with a generated api key
func BootstrapConfig(configPath string, dataDir string) (*Config, error) {
	config := DefaultConfig()
	if dataDir != "" {
		config.DataDir = dataDir
	}

	apiKey, err := GenerateSecureKey(32) // 256 bits
	if err != nil {
		return nil, fmt.Errorf("failed to generate api key: %w", err)
	}
	config.Security.APIKey = apiKey

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./wondercard.yaml"
	}

	return filepath.Join(homeDir, ".config", "wondercard", "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}

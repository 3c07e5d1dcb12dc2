package config

import (
	"fmt"
	"os"
	"strconv"

	"huestat/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Document    DocumentConfig
	Persistence PersistenceConfig
	Analysis    AnalysisConfig
}

// DocumentConfig selects the input document and its fallback
type DocumentConfig struct {
	Path         string
	FallbackPath string
}

// PersistenceConfig holds the flat database connection settings.
// Persistence is optional; when disabled the rest of the config is ignored.
type PersistenceConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AnalysisConfig holds analysis and demo-routine settings
type AnalysisConfig struct {
	TargetColor    string
	Seed           int64
	BitWidth       int
	FibonacciTerms int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Document:    loadDocumentConfig(),
		Persistence: loadPersistenceConfig(),
		Analysis:    loadAnalysisConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDocumentConfig() DocumentConfig {
	return DocumentConfig{
		Path:         getEnvOrDefault("DOCUMENT_PATH", "bincom_colors.html"),
		FallbackPath: getEnvOrDefault("FALLBACK_PATH", "bincom_colors_sample.html"),
	}
}

func loadPersistenceConfig() PersistenceConfig {
	return PersistenceConfig{
		Enabled:  getEnvBoolOrDefault("SAVE_TO_DB", false),
		Host:     getEnvOrDefault("DB_HOST", "localhost"),
		Port:     getEnvIntOrDefault("DB_PORT", 5432),
		User:     getEnvOrDefault("DB_USER", ""),
		Password: getEnvOrDefault("DB_PASS", ""),
		Name:     getEnvOrDefault("DB_NAME", ""),
		SSLMode:  getEnvOrDefault("SSL_MODE", "disable"),
	}
}

func loadAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		TargetColor:    getEnvOrDefault("TARGET_COLOR", "RED"),
		Seed:           int64(getEnvIntOrDefault("DEMO_SEED", 42)),
		BitWidth:       getEnvIntOrDefault("BIT_WIDTH", 4),
		FibonacciTerms: getEnvIntOrDefault("FIB_TERMS", 50),
	}
}

// DSN assembles the lib/pq connection string from the flat parameters.
func (p PersistenceConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Name, p.SSLMode)
}

func validateConfig(config *Config) error {
	if config.Document.Path == "" && config.Document.FallbackPath == "" {
		return errors.ConfigInvalid("a document path is required")
	}
	if config.Persistence.Enabled && config.Persistence.Name == "" {
		return errors.ConfigInvalid("DB_NAME is required when SAVE_TO_DB is set")
	}
	if config.Analysis.TargetColor == "" {
		return errors.ConfigInvalid("target color must not be empty")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

package common

import (
	"os"
	"strconv"
	"time"

	"github.com/kaaryaa/identity-engine/constants"
)

// Config holds all application configuration
type Config struct {
	DocIntel DocIntelConfig
	Server   ServerConfig
	Pipeline PipelineConfig
}

// DocIntelConfig holds Azure Document Intelligence configuration
type DocIntelConfig struct {
	Endpoint     string
	Key          string
	ModelID      string
	APIVersion   string
	PollInterval time.Duration
	Timeout      time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	HTTPAddr      string
	MaxUploadSize int64
}

// PipelineConfig holds extraction pipeline configuration
type PipelineConfig struct {
	ResidualType constants.DocType // classifier fallback when no rule matches
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	residual, err := constants.ParseDocType(getEnv("CLASSIFIER_RESIDUAL_TYPE", string(constants.DocTypePAN)))
	if err != nil || residual == constants.DocTypeAuto {
		residual = constants.DocTypePAN
	}
	return &Config{
		DocIntel: DocIntelConfig{
			Endpoint:     getEnv("AZURE_DOC_INTEL_ENDPOINT", ""),
			Key:          getEnv("AZURE_DOC_INTEL_KEY", ""),
			ModelID:      getEnv("AZURE_DOC_INTEL_MODEL", "prebuilt-idDocument"),
			APIVersion:   getEnv("AZURE_DOC_INTEL_API_VERSION", "2023-07-31"),
			PollInterval: getEnvAsDuration("AZURE_DOC_INTEL_POLL_INTERVAL", 1*time.Second),
			Timeout:      getEnvAsDuration("AZURE_DOC_INTEL_TIMEOUT", 90*time.Second),
		},
		Server: ServerConfig{
			HTTPAddr:      getEnv("HTTP_ADDR", ":8000"),
			MaxUploadSize: getEnvAsInt64("MAX_UPLOAD_BYTES", 20<<20),
		},
		Pipeline: PipelineConfig{
			ResidualType: residual,
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.DocIntel.Endpoint == "" {
		return NewAppError("CONFIG_ERROR", "AZURE_DOC_INTEL_ENDPOINT is required", ErrInvalidInput)
	}
	if c.DocIntel.Key == "" {
		return NewAppError("CONFIG_ERROR", "AZURE_DOC_INTEL_KEY is required", ErrInvalidInput)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	return nil
}

package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	AI       AIConfig
	Storage  StorageConfig
	Pipeline PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	HTTPAddr    string
	CORSOrigins string
	JWTSecret   string
}

// AIConfig holds AI-provider configuration
type AIConfig struct {
	APIKey       string
	BaseURL      string
	DefaultModel string
	Temperature  float32
	Timeout      time.Duration
}

// StorageConfig holds object-storage configuration for invoice archival
type StorageConfig struct {
	Bucket       string
	URLExpiry    time.Duration
	SignerEmail  string
	SignerKeyB64 string
}

// PipelineConfig holds orchestrator-level configuration
type PipelineConfig struct {
	MaxConcurrentAI int64
	Timeout         time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 10),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 2),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
			CORSOrigins: getEnv("CORS_ORIGINS", "*"),
			JWTSecret:   getEnv("JWT_SECRET", ""),
		},
		AI: AIConfig{
			APIKey:       getEnv("GEMINI_API_KEY", ""),
			BaseURL:      getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			DefaultModel: getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature:  getEnvAsFloat32("GEMINI_TEMPERATURE", 0.1),
			Timeout:      getEnvAsDuration("GEMINI_TIMEOUT", 90*time.Second),
		},
		Storage: StorageConfig{
			Bucket:       getEnv("ARCHIVE_BUCKET", ""),
			URLExpiry:    getEnvAsDuration("ARCHIVE_URL_EXPIRY", 15*time.Minute),
			SignerEmail:  getEnv("ARCHIVE_SIGNER_EMAIL", ""),
			SignerKeyB64: getEnv("ARCHIVE_SIGNER_KEY", ""),
		},
		Pipeline: PipelineConfig{
			MaxConcurrentAI: int64(getEnvAsInt32("MAX_CONCURRENT_AI", 3)),
			Timeout:         getEnvAsDuration("PIPELINE_TIMEOUT", 5*time.Minute),
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

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
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
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.AI.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "GEMINI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.JWTSecret == "" {
		return NewAppError("CONFIG_ERROR", "JWT_SECRET is required", ErrInvalidInput)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	return nil
}

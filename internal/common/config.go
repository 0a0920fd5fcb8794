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
	Storage  StorageConfig
	Gemini   GeminiConfig
	Queue    QueueConfig
	Quota    QuotaConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver           string // "postgres" or "sqlite"
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	HTTPAddr  string
	JWTSecret string
}

// StorageConfig selects and configures the blob store backend.
type StorageConfig struct {
	Backend     string // "s3" or "file"
	S3Bucket    string
	S3Region    string
	S3BaseURL   string // public URL prefix; defaults to the bucket endpoint
	FileRoot    string
	FileBaseURL string
}

// GeminiConfig holds the analysis capability configuration.
type GeminiConfig struct {
	Model    string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
	Language string
}

// QueueConfig holds the analysis worker pool and retry policy.
type QueueConfig struct {
	Workers        int
	QueueSize      int
	BaseDelay      time.Duration
	MaxAttempts    int
	ProcessTimeout time.Duration
	AnalyzeInline  bool
}

// QuotaConfig holds the free-tier upload policy.
type QuotaConfig struct {
	FreeUploadLimit int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:           getEnv("DB_DRIVER", "postgres"),
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			HTTPAddr:  getEnv("HTTP_ADDR", ":8080"),
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		Storage: StorageConfig{
			Backend:     getEnv("STORAGE_BACKEND", "s3"),
			S3Bucket:    getEnv("S3_BUCKET", ""),
			S3Region:    getEnv("S3_REGION", ""),
			S3BaseURL:   getEnv("S3_BASE_URL", ""),
			FileRoot:    getEnv("FILE_STORAGE_ROOT", "./uploads"),
			FileBaseURL: getEnv("FILE_STORAGE_BASE_URL", "http://localhost:8080/files"),
		},
		Gemini: GeminiConfig{
			Model:    getEnv("GEMINI_MODEL", "models/gemini-1.5-pro"),
			APIKey:   getEnv("GEMINI_API_KEY", ""),
			BaseURL:  getEnv("GEMINI_BASE_URL", ""),
			Timeout:  getEnvAsDuration("GEMINI_TIMEOUT", 45*time.Second),
			Language: getEnv("GEMINI_LANGUAGE", "Khmer"),
		},
		Queue: QueueConfig{
			Workers:        getEnvAsInt("ANALYSIS_WORKERS", 4),
			QueueSize:      getEnvAsInt("ANALYSIS_QUEUE_SIZE", 256),
			BaseDelay:      getEnvAsDuration("ANALYSIS_RETRY_BASE_DELAY", 2*time.Second),
			MaxAttempts:    getEnvAsInt("ANALYSIS_MAX_ATTEMPTS", 3),
			ProcessTimeout: getEnvAsDuration("ANALYSIS_PROCESS_TIMEOUT", 3*time.Minute),
			AnalyzeInline:  getEnvAsBool("ANALYZE_INLINE", true),
		},
		Quota: QuotaConfig{
			FreeUploadLimit: getEnvAsInt("FREE_UPLOAD_LIMIT", 2),
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

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
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
	if c.Server.JWTSecret == "" {
		return NewAppError("CONFIG_ERROR", "JWT_SECRET is required", ErrInvalidInput)
	}
	if c.Gemini.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "GEMINI_API_KEY is required", ErrInvalidInput)
	}
	if c.Storage.Backend == "s3" && c.Storage.S3Bucket == "" {
		return NewAppError("CONFIG_ERROR", "S3_BUCKET is required for the s3 backend", ErrInvalidInput)
	}
	if c.Queue.MaxAttempts < 1 {
		return NewAppError("CONFIG_ERROR", "ANALYSIS_MAX_ATTEMPTS must be at least 1", ErrInvalidInput)
	}
	return nil
}

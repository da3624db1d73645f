package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	OCR      OCRConfig
	Database DatabaseConfig
	QR       QRConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// UploadConfig holds slip upload configuration
type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Tesseract   string
	Language    string
	TessdataDir string
	Timeout     time.Duration
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path string
}

// QRConfig holds payment-code rendering configuration
type QRConfig struct {
	Dark  string
	Light string
	Size  int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":" + getEnv("PORT", "3000"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Upload: UploadConfig{
			Dir:      getEnv("UPLOAD_DIR", "uploads"),
			MaxBytes: getEnvAsInt64("MAX_UPLOAD_BYTES", 2<<20),
		},
		OCR: OCRConfig{
			Tesseract:   getEnv("TESSERACT", "tesseract"),
			Language:    getEnv("TESSERACT_LANG", "tha+eng"),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
			Timeout:     getEnvAsDuration("OCR_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "slipverify.db"),
		},
		QR: QRConfig{
			Dark:  getEnv("QR_DARK", "#000"),
			Light: getEnv("QR_LIGHT", "#fff"),
			Size:  getEnvAsInt("QR_SIZE", 256),
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
	if c.Server.Addr == "" || c.Server.Addr == ":" {
		return NewAppError("CONFIG_ERROR", "PORT is required", ErrInvalidInput)
	}
	if c.Upload.Dir == "" {
		return NewAppError("CONFIG_ERROR", "UPLOAD_DIR is required", ErrInvalidInput)
	}
	if c.Upload.MaxBytes <= 0 {
		return NewAppError("CONFIG_ERROR", "MAX_UPLOAD_BYTES must be positive", ErrInvalidInput)
	}
	if c.Database.Path == "" {
		return NewAppError("CONFIG_ERROR", "DB_PATH is required", ErrInvalidInput)
	}
	return nil
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database    DatabaseConfig
	JWT         JWTConfig
	App         AppConfig
	Storage     StorageConfig
	Recognition RecognitionConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

// RecognitionConfig drives the kiosk recognition loop.
type RecognitionConfig struct {
	APIBaseURL string
	Period     time.Duration
	Threshold  float64
	// Nearest switches the decision rule from first-match-under-threshold
	// to minimum-distance. Off keeps the historical behavior.
	Nearest bool
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "sitepulse"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// File storage configuration
	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	// Recognition loop configuration
	recognition, err := loadRecognition()
	if err != nil {
		return nil, err
	}
	config.Recognition = recognition

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadKiosk reads only what the kiosk binary needs. The kiosk talks to the
// API over HTTP and carries no database or JWT credentials.
func LoadKiosk() (*RecognitionConfig, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on environment")
	}

	recognition, err := loadRecognition()
	if err != nil {
		return nil, err
	}
	if err := recognition.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &recognition, nil
}

func loadRecognition() (RecognitionConfig, error) {
	period, err := time.ParseDuration(getEnv("RECOGNITION_PERIOD", "2s"))
	if err != nil {
		return RecognitionConfig{}, fmt.Errorf("invalid RECOGNITION_PERIOD: %w", err)
	}
	threshold, err := strconv.ParseFloat(getEnv("RECOGNITION_THRESHOLD", "0.5"), 64)
	if err != nil {
		return RecognitionConfig{}, fmt.Errorf("invalid RECOGNITION_THRESHOLD: %w", err)
	}
	return RecognitionConfig{
		APIBaseURL: getEnv("RECOGNITION_API_URL", "http://localhost:8080"),
		Period:     period,
		Threshold:  threshold,
		Nearest:    getEnv("RECOGNITION_NEAREST_MATCH", "false") == "true",
	}, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return c.Recognition.Validate()
}

// Validate validates the recognition loop settings.
func (c *RecognitionConfig) Validate() error {
	if c.Period <= 0 {
		return fmt.Errorf("RECOGNITION_PERIOD must be positive")
	}
	if c.Threshold <= 0 {
		return fmt.Errorf("RECOGNITION_THRESHOLD must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

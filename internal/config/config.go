package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode     string
	Port        string
	Database    DatabaseConfig
	Payment     PaymentConfig
	SeedCatalog bool
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	Path     string
}

// PaymentConfig holds payment gateway configuration
type PaymentConfig struct {
	Mode               string
	GatewayURL         string
	APIKey             string
	Timeout            time.Duration
	BreakerMaxFailures int
	BreakerCooldown    time.Duration
}

// Database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Payment modes
const (
	PaymentModeSimulated = "simulated"
	PaymentModeHTTP      = "http"
)

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Get APP_MODE (default to "dev") - trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	database, err := loadDatabaseConfig(appMode)
	if err != nil {
		return nil, err
	}

	payment, err := loadPaymentConfig()
	if err != nil {
		return nil, err
	}

	seed, _ := strconv.ParseBool(getEnv("SEED_CATALOG", strconv.FormatBool(appMode == "dev")))

	// Build config based on APP_MODE
	config := &Config{
		AppMode:     appMode,
		Port:        getEnv("PORT", "3000"),
		Database:    database,
		Payment:     payment,
		SeedCatalog: seed,
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s, DB: %s, PAYMENT: %s]",
		appMode, database.Driver, payment.Mode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) (DatabaseConfig, error) {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	driver := strings.ToLower(strings.TrimSpace(getEnv("DB_DRIVER", DriverSQLite)))
	defaultPort := "3306"
	switch driver {
	case DriverMySQL, DriverSQLite:
	case DriverPostgres:
		defaultPort = "5432"
	default:
		return DatabaseConfig{}, fmt.Errorf("invalid DB_DRIVER: '%s' (must be 'mysql', 'postgres' or 'sqlite')", driver)
	}

	return DatabaseConfig{
		Driver:   driver,
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", defaultPort),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "library"),
		Path:     getEnv(prefix+"DB_PATH", "library.db"),
	}, nil
}

// loadPaymentConfig loads payment gateway config
func loadPaymentConfig() (PaymentConfig, error) {
	mode := strings.ToLower(strings.TrimSpace(getEnv("PAYMENT_MODE", PaymentModeSimulated)))
	if mode != PaymentModeSimulated && mode != PaymentModeHTTP {
		return PaymentConfig{}, fmt.Errorf("invalid PAYMENT_MODE: '%s' (must be 'simulated' or 'http')", mode)
	}

	gatewayURL := getEnv("PAYMENT_GATEWAY_URL", "")
	if mode == PaymentModeHTTP && gatewayURL == "" {
		return PaymentConfig{}, fmt.Errorf("PAYMENT_GATEWAY_URL is required when PAYMENT_MODE is 'http'")
	}

	timeoutSecs, _ := strconv.Atoi(getEnv("PAYMENT_TIMEOUT_SECONDS", "10"))
	maxFailures, _ := strconv.Atoi(getEnv("PAYMENT_BREAKER_MAX_FAILURES", "5"))
	cooldownSecs, _ := strconv.Atoi(getEnv("PAYMENT_BREAKER_COOLDOWN_SECONDS", "30"))

	return PaymentConfig{
		Mode:               mode,
		GatewayURL:         gatewayURL,
		APIKey:             getEnv("PAYMENT_API_KEY", ""),
		Timeout:            time.Duration(timeoutSecs) * time.Second,
		BreakerMaxFailures: maxFailures,
		BreakerCooldown:    time.Duration(cooldownSecs) * time.Second,
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		// Default production origins
		return "https://library.example.org"
	}
	return origins
}

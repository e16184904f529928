package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Database    DatabaseConfig
	Pricing     PricingConfig
	Payment     PaymentConfig
	CORS        CORSConfig
	LogLevel    string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// PricingConfig holds the business constants for total calculation.
type PricingConfig struct {
	FreeShippingThreshold float64
	ShippingFlatFee       float64
	TaxRate               float64
	PriceTolerance        float64
}

type PaymentConfig struct {
	SuccessRate float64
}

type CORSConfig struct {
	AllowOrigins string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", ""),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "checkout"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
		Pricing: PricingConfig{
			FreeShippingThreshold: getFloatOrViper("FREE_SHIPPING_THRESHOLD", 50.00),
			ShippingFlatFee:       getFloatOrViper("SHIPPING_FLAT_FEE", 10.00),
			TaxRate:               getFloatOrViper("TAX_RATE", 0.08),
			PriceTolerance:        getFloatOrViper("PRICE_TOLERANCE", 0.01),
		},
		Payment: PaymentConfig{
			SuccessRate: getFloatOrViper("PAYMENT_SUCCESS_RATE", 0.90),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnvOrViper("CORS_ALLOW_ORIGINS", "*"),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate ranges
	if cfg.Payment.SuccessRate < 0 || cfg.Payment.SuccessRate > 1 {
		return nil, fmt.Errorf("PAYMENT_SUCCESS_RATE must be between 0 and 1")
	}
	if cfg.Pricing.TaxRate < 0 {
		return nil, fmt.Errorf("TAX_RATE must not be negative")
	}

	return cfg, nil
}

// UsePostgres reports whether a Postgres order store is configured.
// When DB_HOST is empty the service runs with the in-memory store.
func (c *Config) UsePostgres() bool {
	return c.Database.Host != ""
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func getFloatOrViper(key string, defaultValue float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	if viper.IsSet(key) {
		return viper.GetFloat64(key)
	}
	return defaultValue
}

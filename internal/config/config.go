package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the storefront core
type Config struct {
	Store    StoreConfig
	Merchant MerchantConfig
	Logging  LoggingConfig
}

// StoreConfig selects the durable key-value backend. Namespace plays the
// role of one browser's storage: every key is scoped by it.
type StoreConfig struct {
	Driver        string
	Namespace     string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DatabaseURL   string
}

type MerchantConfig struct {
	ShopName       string
	WhatsAppNumber string
	Currency       string
	Locale         string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("godotenv.Load: %w", err)
	}

	return FromEnv()
}

// FromEnv builds and validates the configuration from environment variables
// only.
func FromEnv() (*Config, error) {
	config := &Config{
		Store: StoreConfig{
			Driver:        getEnv("STORE_DRIVER", DriverSQLite),
			Namespace:     getEnv("STORE_NAMESPACE", "default"),
			SQLitePath:    getEnv("SQLITE_PATH", "boutique.db"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
			DatabaseURL:   getEnv("DATABASE_URL", ""),
		},
		Merchant: MerchantConfig{
			ShopName:       getEnv("SHOP_NAME", "Srila's Boutique"),
			WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "916382059703"),
			Currency:       getEnv("CURRENCY", "INR"),
			Locale:         getEnv("LOCALE", "en-IN"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverSQLite, DriverRedis:
	case DriverPostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("STORE_DRIVER[%s] is not supported", c.Store.Driver)
	}

	if c.Store.Namespace == "" {
		return fmt.Errorf("STORE_NAMESPACE is required")
	}

	if c.Merchant.WhatsAppNumber == "" {
		return fmt.Errorf("WHATSAPP_NUMBER is required")
	}

	if _, err := c.Merchant.CurrencyUnit(); err != nil {
		return err
	}

	if _, err := c.Merchant.LocaleTag(); err != nil {
		return err
	}

	return nil
}

func (m MerchantConfig) CurrencyUnit() (currency.Unit, error) {
	unit, err := currency.ParseISO(m.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("CURRENCY[%s] is not valid: %w", m.Currency, err)
	}
	return unit, nil
}

func (m MerchantConfig) LocaleTag() (language.Tag, error) {
	tag, err := language.Parse(m.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("LOCALE[%s] is not valid: %w", m.Locale, err)
	}
	return tag, nil
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
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

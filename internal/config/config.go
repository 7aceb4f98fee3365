package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultAppPort       = "8080"
	defaultAppEnv        = "development"
	defaultAddressesFile = "testdata/addresses.json"
)

type Config struct {
	AppEnv        string
	AppPort       string
	AddressesFile string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	// DBURL overrides the individual DB_* settings when set.
	DBURL string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv:        getEnv("APP_ENV", defaultAppEnv),
		AppPort:       getEnv("APP_PORT", defaultAppPort),
		AddressesFile: getEnv("ADDRESSES_FILE", defaultAddressesFile),
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        os.Getenv("DB_PORT"),
		DBURL:         os.Getenv("DB_URL"),
	}
}

// HasDatabase reports whether enough settings exist to open a connection.
func (c *Config) HasDatabase() bool {
	return c.DBURL != "" || c.DBHost != ""
}

// DSN returns the connection string for lib/pq.
func (c *Config) DSN() string {
	if c.DBURL != "" {
		return c.DBURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

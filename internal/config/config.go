package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
	// AutoMigrate creates the schema on startup when it is missing.
	AutoMigrate bool
}

// BoardConfig holds listing settings.
type BoardConfig struct {
	// PageSize is the number of posts per listing page.
	PageSize int
	// BlockSize is the number of page links shown per navigation block.
	BlockSize int
	// BcryptCost is the work factor for post password hashes.
	BcryptCost int
}

// HTTPConfig holds server timeouts applied at the transport boundary.
type HTTPConfig struct {
	ReadTimeoutSec  int
	WriteTimeoutSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	// AppHost is the host advertised in the API docs when a request has no Host header.
	AppHost  string
	Port     string
	Timezone string
	HTTP     HTTPConfig
	Database DatabaseConfig
	Board    BoardConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"),
		Timezone: getEnv("APP_TIMEZONE", "UTC"),
		HTTP: HTTPConfig{
			ReadTimeoutSec:  getEnvInt("HTTP_READ_TIMEOUT_SEC", 10),
			WriteTimeoutSec: getEnvInt("HTTP_WRITE_TIMEOUT_SEC", 10),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
			AutoMigrate:        getEnvBool("DB_AUTO_MIGRATE", true),
		},
		Board: BoardConfig{
			PageSize:   getEnvInt("BOARD_PAGE_SIZE", 10),
			BlockSize:  getEnvInt("BOARD_BLOCK_SIZE", 10),
			BcryptCost: getEnvInt("BOARD_BCRYPT_COST", 10),
		},
	}
}

// Validate rejects settings the listing engine cannot work with.
func (c *AppConfig) Validate() error {
	if c.Board.PageSize <= 0 {
		return fmt.Errorf("BOARD_PAGE_SIZE must be > 0, got %d", c.Board.PageSize)
	}
	if c.Board.BlockSize <= 0 {
		return fmt.Errorf("BOARD_BLOCK_SIZE must be > 0, got %d", c.Board.BlockSize)
	}
	if c.Board.BcryptCost < 4 || c.Board.BcryptCost > 31 {
		return fmt.Errorf("BOARD_BCRYPT_COST must be within 4..31, got %d", c.Board.BcryptCost)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone for log timestamps.
func (c *AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

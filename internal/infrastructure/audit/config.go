// Package audit implements the optional Postgres audit projection: a
// read-side mirror of committed Transaction Records, never the ledger's
// source of truth (the Transaction Log file is — see internal/ledger).
package audit

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the Postgres connection settings for the audit sink.
type Config struct {
	Host         string
	Port         int
	Database     string
	User         string
	Password     string
	SSLMode      string
	MaxOpenConns int
}

// NewConfigFromEnv builds a Config. Only consulted when AUDIT_LOG_ENABLED
// is true.
func NewConfigFromEnv() *Config {
	return &Config{
		Host:         getEnv("AUDIT_DB_HOST", "localhost"),
		Port:         getEnvAsInt("AUDIT_DB_PORT", 5432),
		Database:     getEnv("AUDIT_DB_NAME", "ftwallet_audit"),
		User:         getEnv("AUDIT_DB_USER", "ftwallet"),
		Password:     getEnv("AUDIT_DB_PASSWORD", ""),
		SSLMode:      getEnv("AUDIT_DB_SSLMODE", "disable"),
		MaxOpenConns: getEnvAsInt("AUDIT_DB_MAX_OPEN_CONNS", 10),
	}
}

// ConnectionString builds the libpq-style DSN pgxpool expects.
func (c *Config) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

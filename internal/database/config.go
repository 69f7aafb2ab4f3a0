package database

import (
	"fmt"
	"strings"
	"time"
)

// DatabaseConfig holds connection settings for the SQL-backed OAuth store
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// PostgreSQL-specific configuration
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration
	Path string

	// Connection attempts before giving up; zero means DefaultMaxRetries.
	MaxRetries int
	// Delay before the first retry, doubled on every attempt.
	RetryDelay time.Duration
}

const (
	DefaultMaxRetries = 5
	DefaultRetryDelay = time.Second
)

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch c.driver() {
	case "postgres":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite":
		return c.Path
	default:
		return ""
	}
}

// driver normalizes the configured driver name.
func (c *DatabaseConfig) driver() string {
	switch d := strings.ToLower(c.Driver); d {
	case "postgresql":
		return "postgres"
	case "":
		return "sqlite"
	default:
		return d
	}
}

// inMemory reports whether the sqlite database lives in process memory.
func (c *DatabaseConfig) inMemory() bool {
	return c.driver() == "sqlite" && (c.Path == ":memory:" || strings.Contains(c.Path, "mode=memory"))
}

func (c *DatabaseConfig) retries() (int, time.Duration) {
	maxRetries, delay := c.MaxRetries, c.RetryDelay
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	if delay <= 0 {
		delay = DefaultRetryDelay
	}
	return maxRetries, delay
}

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(os.Getenv("APP_ENV")))
}

// Store drivers accepted in STORE_DRIVER.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// MinPasswordLength is the shortest MCP_AUTH_PASSWORD accepted in HTTP mode.
const MinPasswordLength = 8

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port      int    `json:"port"`
	Host      string `json:"host"`
	ServerURL string `json:"server_url"`

	// Authorization
	AuthPassword string `json:"auth_password"`

	// Backend fantasy data API
	PythonAPIURL string `json:"python_api_url"`

	// Features
	EnableWriteOps bool   `json:"enable_write_ops"`
	EnablePreview  bool   `json:"enable_preview"`
	UIDistDir      string `json:"ui_dist_dir"`
	PreviewDir     string `json:"preview_dir"`

	// OAuth record storage
	StoreDriver   string        `json:"store_driver"`
	SweepInterval time.Duration `json:"sweep_interval"`

	// Database configuration (sqlite / postgres stores)
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBName     string `json:"db_name"`
	DBSSLMode  string `json:"db_sslmode"`
	DBPath     string `json:"db_path"`

	// Redis configuration (redis store)
	RedisAddr     string `json:"redis_addr"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`

	// Logging configuration
	Environment string `json:"environment"`
	LogLevel    string `json:"log_level"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, ServerURL: %s, AuthPassword: %s, PythonAPIURL: %s, "+
		"EnableWriteOps: %t, EnablePreview: %t, UIDistDir: %s, PreviewDir: %s, StoreDriver: %s, SweepInterval: %s, "+
		"DBHost: %s, DBPort: %s, DBUser: %s, DBPassword: %s, DBName: %s, DBPath: %s, "+
		"RedisAddr: %s, RedisPassword: %s, RedisDB: %d, Environment: %s, LogLevel: %s}",
		c.Port, c.Host, c.ServerURL, redact(c.AuthPassword), maskURL(c.PythonAPIURL),
		c.EnableWriteOps, c.EnablePreview, c.UIDistDir, c.PreviewDir, c.StoreDriver, c.SweepInterval,
		c.DBHost, c.DBPort, c.DBUser, redact(c.DBPassword), c.DBName, c.DBPath,
		c.RedisAddr, redact(c.RedisPassword), c.RedisDB, c.Environment, c.LogLevel)
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "[REDACTED]"
}

// maskURL masks the password in a URL with user info
func maskURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
		}
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct.
// It does not check the password; call Validate once the transport is known.
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("PORT", "4951"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	sweepInterval, err := time.ParseDuration(GetEnvWithDefault("SWEEP_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SWEEP_INTERVAL: %w", err)
	}

	serverURL := strings.TrimRight(GetEnvWithDefault("MCP_SERVER_URL", "http://localhost:4951"), "/")
	if err := requireAbsoluteURL("MCP_SERVER_URL", serverURL); err != nil {
		return nil, err
	}
	apiURL := GetEnvWithDefault("PYTHON_API_URL", "http://localhost:8766")
	if err := requireAbsoluteURL("PYTHON_API_URL", apiURL); err != nil {
		return nil, err
	}

	config := &Config{
		Port:           port,
		Host:           GetEnvWithDefault("HOST", "0.0.0.0"),
		ServerURL:      serverURL,
		AuthPassword:   os.Getenv("MCP_AUTH_PASSWORD"),
		PythonAPIURL:   apiURL,
		EnableWriteOps: GetEnvAsType("ENABLE_WRITE_OPS", false),
		EnablePreview:  GetEnvAsType("ENABLE_PREVIEW", false),
		UIDistDir:      GetEnvWithDefault("UI_DIST_DIR", "dist"),
		PreviewDir:     GetEnvWithDefault("PREVIEW_DIR", "dist/preview"),
		StoreDriver:    strings.ToLower(GetEnvWithDefault("STORE_DRIVER", StoreMemory)),
		SweepInterval:  sweepInterval,
		DBHost:         GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:         GetEnvWithDefault("DB_PORT", "5432"),
		DBUser:         GetEnvWithDefault("DB_USER", "fbb"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         GetEnvWithDefault("DB_NAME", "fbb_mcp"),
		DBSSLMode:      GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBPath:         GetEnvWithDefault("DB_PATH", "fbb-mcp.sqlite"),
		RedisAddr:      GetEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        GetEnvAsType("REDIS_DB", 0),
		Environment:    GetEnvWithDefault("APP_ENV", "development"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Validate checks the settings needed to serve. The password is only
// required when the OAuth endpoints are exposed.
func (c *Config) Validate(httpMode bool) error {
	var errs []error
	if httpMode {
		if c.AuthPassword == "" {
			errs = append(errs, errors.New("MCP_AUTH_PASSWORD environment variable is required"))
		} else if len(c.AuthPassword) < MinPasswordLength {
			errs = append(errs, fmt.Errorf("MCP_AUTH_PASSWORD must be at least %d characters", MinPasswordLength))
		}
	}
	switch c.StoreDriver {
	case StoreMemory, StoreSQLite, StorePostgres, StoreRedis:
	default:
		errs = append(errs, fmt.Errorf("unsupported STORE_DRIVER %q (supported: memory, sqlite, postgres, redis)", c.StoreDriver))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	if c.SweepInterval <= 0 {
		errs = append(errs, errors.New("SWEEP_INTERVAL must be positive"))
	}
	return errors.Join(errs...)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Level resolves the log level: LOG_LEVEL wins over APP_ENV.
func (c *Config) Level() logrus.Level {
	if c.LogLevel != "" {
		if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
			return level
		}
	}
	return LevelForEnvironment(c.Environment)
}

// LevelForEnvironment maps APP_ENV to a default log level.
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development", "":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

func requireAbsoluteURL(key, raw string) error {
	parsed, err := url.ParseRequestURI(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid %s format: %s", key, raw)
	}
	return nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	case time.Duration:
		durationValue, err := time.ParseDuration(value)
		if err != nil {
			return defaultValue
		}
		return any(durationValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}

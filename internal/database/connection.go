package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogger replaces the package logger.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

// InitDatabase opens the database for the configured driver. Connection
// failures are retried with exponential backoff until ctx is done.
func InitDatabase(ctx context.Context, cfg DatabaseConfig) (*gorm.DB, error) {
	driver := cfg.driver()

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
	}

	maxRetries, delay := cfg.retries()
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.WithFields(logrus.Fields{
			"attempt":     attempt,
			"max_retries": maxRetries,
		}).Debug("Attempting database connection")

		var db *gorm.DB
		db, err = connect(ctx, dialector)
		if err == nil {
			sqlDB, _ := db.DB()
			configureConnectionPool(sqlDB, cfg.inMemory())
			log.WithFields(logrus.Fields{
				"db_driver": driver,
				"attempt":   attempt,
			}).Info("Database initialized successfully")
			return db, nil
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		// Don't wait after the last attempt
		if attempt == maxRetries {
			break
		}
		log.WithField("delay", delay).Info("Retrying database connection")
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("database connection cancelled: %w", ctx.Err())
		case <-time.After(delay):
		}
		delay *= 2
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

func connect(ctx context.Context, dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// configureConnectionPool sets the pool limits. An in-memory sqlite database
// exists per connection, so it is pinned to a single one.
func configureConnectionPool(sqlDB *sql.DB, inMemory bool) {
	maxOpen, maxIdle := 25, 5
	if inMemory {
		maxOpen, maxIdle = 1, 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	if !inMemory {
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	log.WithFields(logrus.Fields{
		"max_open_conns": maxOpen,
		"max_idle_conns": maxIdle,
	}).Debug("Connection pool configured")
}

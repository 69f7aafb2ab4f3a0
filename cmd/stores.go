package main

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/fbb-mcp/internal/auth"
	"github.com/franciscosanchezn/fbb-mcp/internal/config"
	"github.com/franciscosanchezn/fbb-mcp/internal/database"
	"github.com/franciscosanchezn/fbb-mcp/internal/models"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const redisKeyPrefix = "fbb-mcp"

// buildStores opens the OAuth record backend selected by STORE_DRIVER. The
// returned func releases its connections.
func buildStores(ctx context.Context, cfg *config.Config) (auth.Stores, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreDriver {
	case config.StoreMemory:
		return auth.MemoryStores(), noop, nil

	case config.StoreSQLite, config.StorePostgres:
		db, err := database.InitDatabase(ctx, database.DatabaseConfig{
			Driver:   cfg.StoreDriver,
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			Name:     cfg.DBName,
			SSLMode:  cfg.DBSSLMode,
			Path:     cfg.DBPath,
		})
		if err != nil {
			return auth.Stores{}, nil, err
		}
		if err := auth.MigrateGormStores(db); err != nil {
			return auth.Stores{}, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return auth.Stores{}, nil, err
		}
		return auth.Stores{
			Pending: auth.NewGormStore[models.PendingAuthorization](db, auth.KindPending),
			Codes:   auth.NewGormStore[models.AuthorizationCode](db, auth.KindCode),
			Tokens:  auth.NewGormStore[models.AccessToken](db, auth.KindToken),
		}, sqlDB.Close, nil

	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return auth.Stores{}, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		log.WithField("redis_addr", cfg.RedisAddr).Info("Using redis OAuth store")
		clock := auth.RealClock()
		return auth.Stores{
			Pending: auth.NewRedisStore[models.PendingAuthorization](client, redisKeyPrefix+":"+auth.KindPending, clock),
			Codes:   auth.NewRedisStore[models.AuthorizationCode](client, redisKeyPrefix+":"+auth.KindCode, clock),
			Tokens:  auth.NewRedisStore[models.AccessToken](client, redisKeyPrefix+":"+auth.KindToken, clock),
		}, client.Close, nil

	default:
		return auth.Stores{}, nil, fmt.Errorf("unsupported store driver: %s", cfg.StoreDriver)
	}
}

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/franciscosanchezn/fbb-mcp/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record kinds used as the first half of the oauth_records primary key.
const (
	KindPending = "pending"
	KindCode    = "code"
	KindToken   = "token"
)

// GormStore keeps records of one kind in the oauth_records table.
type GormStore[T Expirable] struct {
	db   *gorm.DB
	kind string
}

func NewGormStore[T Expirable](db *gorm.DB, kind string) *GormStore[T] {
	return &GormStore[T]{db: db, kind: kind}
}

// MigrateGormStores creates the oauth_records table.
func MigrateGormStores(db *gorm.DB) error {
	return db.AutoMigrate(&models.OAuthRecord{})
}

func (s *GormStore[T]) Put(ctx context.Context, key string, value T) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", s.kind, err)
	}
	record := &models.OAuthRecord{
		Kind:      s.kind,
		Key:       key,
		Payload:   string(payload),
		ExpiresAt: value.Expiry().UTC(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(record).Error
}

func (s *GormStore[T]) Get(ctx context.Context, key string) (T, error) {
	var record models.OAuthRecord
	err := s.db.WithContext(ctx).Where("kind = ? AND record_key = ?", s.kind, key).First(&record).Error
	if err != nil {
		var zero T
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	return s.decode(record)
}

func (s *GormStore[T]) Take(ctx context.Context, key string) (T, error) {
	var value T
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record models.OAuthRecord
		if err := tx.Where("kind = ? AND record_key = ?", s.kind, key).First(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		result := tx.Where("kind = ? AND record_key = ?", s.kind, key).Delete(&models.OAuthRecord{})
		if result.Error != nil {
			return result.Error
		}
		// Another transaction removed it first.
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		decoded, err := s.decode(record)
		if err != nil {
			return err
		}
		value = decoded
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

func (s *GormStore[T]) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("kind = ? AND record_key = ?", s.kind, key).Delete(&models.OAuthRecord{}).Error
}

func (s *GormStore[T]) Sweep(ctx context.Context, now time.Time) (int, error) {
	result := s.db.WithContext(ctx).Where("kind = ? AND expires_at < ?", s.kind, now.UTC()).Delete(&models.OAuthRecord{})
	return int(result.RowsAffected), result.Error
}

func (s *GormStore[T]) decode(record models.OAuthRecord) (T, error) {
	var value T
	if err := json.Unmarshal([]byte(record.Payload), &value); err != nil {
		return value, fmt.Errorf("failed to decode %s record: %w", s.kind, err)
	}
	return value, nil
}

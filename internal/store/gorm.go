package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one persisted collection blob.
type Record struct {
	Key   string `gorm:"primaryKey"`
	Value []byte `gorm:"not null"`
}

// GormStore persists collection blobs in a single table of the
// underlying database file.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("db.AutoMigrate -> %w", err)
	}

	return &GormStore{
		db: db,
	}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var record Record

	result := s.db.WithContext(ctx).First(&record, "key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}

		return nil, result.Error
	}

	return record.Value, nil
}

func (s *GormStore) Put(ctx context.Context, key string, value []byte) error {
	record := Record{
		Key:   key,
		Value: value,
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&record)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	result := s.db.WithContext(ctx).Delete(&Record{}, "key = ?", key)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

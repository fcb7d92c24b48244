package marks

import (
	"context"
	"fmt"
	"strings"

	"catalog-manager/core/database"

	"gorm.io/gorm"
)

// DBStore keeps marked ids in the marked_records table.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore creates a store on db.
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

// Migrate creates or updates the marked_records table.
func (s *DBStore) Migrate() error {
	if err := s.db.AutoMigrate(&MarkedRecord{}); err != nil {
		return fmt.Errorf("failed to migrate marked_records: %w", err)
	}
	return nil
}

// Verify checks that the table has every column the store uses.
func (s *DBStore) Verify() error {
	missing, err := database.MissingColumns(s.db, MarkedRecord{}.TableName(), markedColumns...)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("marked_records is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Read returns marked ids in insertion order.
func (s *DBStore) Read(ctx context.Context) ([]string, error) {
	ids := make([]string, 0)
	err := s.db.WithContext(ctx).
		Model(&MarkedRecord{}).
		Order("position ASC").
		Pluck("record_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read marked records: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// Write replaces the marked set with ids in one transaction.
func (s *DBStore) Write(ctx context.Context, ids []string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&MarkedRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear marked records: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}

		rows := make([]MarkedRecord, 0, len(ids))
		seen := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			rows = append(rows, MarkedRecord{RecordID: id, Position: len(rows)})
		}
		if err := tx.CreateInBatches(rows, 500).Error; err != nil {
			return fmt.Errorf("failed to write marked records: %w", err)
		}
		return nil
	})
}

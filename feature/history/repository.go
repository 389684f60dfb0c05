package history

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository persists sync run outcomes.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a run ledger backed by the given database.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the ledger table.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&Run{}); err != nil {
		return fmt.Errorf("failed to migrate run ledger: %w", err)
	}
	return nil
}

// Record appends one run to the ledger.
func (r *Repository) Record(ctx context.Context, run *Run) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record run %s: %w", run.RunID, err)
	}
	return nil
}

// Recent returns the most recent runs, newest first.
func (r *Repository) Recent(ctx context.Context, limit int) ([]Run, error) {
	var runs []Run
	err := r.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query run ledger: %w", err)
	}
	return runs, nil
}

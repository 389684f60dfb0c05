package history

import "time"

// Run statuses recorded in the ledger.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Run is one row of the sync run ledger.
type Run struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement"`
	RunID             string    `gorm:"column:run_id;size:36;uniqueIndex"`
	StartedAt         time.Time `gorm:"column:started_at"`
	FinishedAt        time.Time `gorm:"column:finished_at"`
	Status            string    `gorm:"column:status;size:16"`
	ProductCount      int       `gorm:"column:product_count"`
	NewCount          int       `gorm:"column:new_count"`
	ExistingCount     int       `gorm:"column:existing_count"`
	DiscontinuedCount int       `gorm:"column:discontinued_count"`
	OutputPath        string    `gorm:"column:output_path;size:255"`
}

// TableName overrides the table name.
func (Run) TableName() string {
	return "sync_runs"
}

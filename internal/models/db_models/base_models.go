package db_models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel carries the audit columns shared by every table. DeletedAt makes
// soft delete the only deletion mechanism: GORM filters deleted rows out of
// every default query, so the rule lives in one place instead of per call
// site. Explicit lookups that must still see deleted rows use Unscoped.
type BaseModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

package db_models

import "time"

// BurnoutScore tracks a user's burnout level over a reporting period.
// Managed by superusers only.
type BurnoutScore struct {
	BaseModel
	UserID       uint      `gorm:"not null;index:idx_burnout_user_id" json:"user_id"`
	PeriodStart  time.Time `gorm:"not null;index" json:"period_start"`
	PeriodEnd    time.Time `gorm:"not null;index" json:"period_end"`
	BurnoutScore float64   `gorm:"not null;index:idx_burnout_value" json:"burnout_score"`
}

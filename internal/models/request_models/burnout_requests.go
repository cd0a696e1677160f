package request_models

import "time"

type CreateBurnoutScoreRequest struct {
	UserID       uint      `json:"user_id" binding:"required"`
	PeriodStart  time.Time `json:"period_start" binding:"required"`
	PeriodEnd    time.Time `json:"period_end" binding:"required"`
	BurnoutScore float64   `json:"burnout_score"`
}

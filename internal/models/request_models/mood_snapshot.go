package request_models

import (
	"fmt"

	"vibecheck/internal/models/db_models"
	"vibecheck/pkg/utils"
)

// MoodSnapshot is the validated input for one sentiment analysis run. All
// six fields must be present and in-domain before any outbound call is made.
type MoodSnapshot struct {
	UserID       uint                 `json:"user_id"`
	Summary      string               `json:"summary"`
	Mood         db_models.Mood       `json:"mood"`
	EnergyLevel  int                  `json:"energy_level"`
	Complexity   db_models.Complexity `json:"complexity"`
	Satisfaction float64              `json:"satisfaction"`
}

// Validate checks every field against its declared domain and returns the
// full list of violations, or nil when the snapshot is valid.
func (m MoodSnapshot) Validate() error {
	errs := &utils.ValidationErrors{}

	if m.UserID == 0 {
		errs.Add("user_id", "is required")
	}
	if m.Summary == "" {
		errs.Add("summary", "is required")
	} else if len(m.Summary) > 100 {
		errs.Add("summary", "must be at most 100 characters")
	}
	if !m.Mood.Valid() {
		errs.Add("mood", fmt.Sprintf("must be one of sad, angry, happy, good, excited; got %q", m.Mood))
	}
	if m.EnergyLevel < 1 || m.EnergyLevel > 5 {
		errs.Add("energy_level", "must be between 1 and 5")
	}
	if !m.Complexity.Valid() {
		errs.Add("complexity", fmt.Sprintf("must be one of easy, medium, hard, very_hard; got %q", m.Complexity))
	}
	if m.Satisfaction < 1.0 || m.Satisfaction > 10.0 {
		errs.Add("satisfaction", "must be between 1.0 and 10.0")
	}

	if errs.HasViolations() {
		return errs
	}
	return nil
}

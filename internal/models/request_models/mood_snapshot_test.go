package request_models

import (
	"errors"
	"strings"
	"testing"

	"vibecheck/internal/models/db_models"
	"vibecheck/pkg/utils"
)

func validMoodSnapshot() MoodSnapshot {
	return MoodSnapshot{
		UserID:       1,
		Summary:      "Finished the migration ahead of schedule",
		Mood:         db_models.MoodExcited,
		EnergyLevel:  5,
		Complexity:   db_models.ComplexityHard,
		Satisfaction: 10,
	}
}

func TestMoodSnapshotValidate_AcceptsValidInput(t *testing.T) {
	if err := validMoodSnapshot().Validate(); err != nil {
		t.Fatalf("Validate returned error for valid snapshot: %v", err)
	}
}

func TestMoodSnapshotValidate_BoundaryValues(t *testing.T) {
	s := validMoodSnapshot()
	s.EnergyLevel = 1
	s.Satisfaction = 1.0
	if err := s.Validate(); err != nil {
		t.Errorf("lower bounds should be valid, got %v", err)
	}

	s.EnergyLevel = 5
	s.Satisfaction = 10.0
	if err := s.Validate(); err != nil {
		t.Errorf("upper bounds should be valid, got %v", err)
	}
}

func TestMoodSnapshotValidate_ReportsEveryViolation(t *testing.T) {
	s := MoodSnapshot{
		UserID:       0,
		Summary:      "",
		Mood:         "furious",
		EnergyLevel:  0,
		Complexity:   "impossible",
		Satisfaction: 0,
	}

	err := s.Validate()
	if !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	var verrs *utils.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected *ValidationErrors, got %T", err)
	}
	if len(verrs.Violations) != 6 {
		t.Errorf("violations = %d, expected 6 (one per field)", len(verrs.Violations))
	}
}

func TestMoodSnapshotValidate_FieldDomains(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*MoodSnapshot)
		field  string
	}{
		{"summary too long", func(s *MoodSnapshot) { s.Summary = strings.Repeat("a", 101) }, "summary"},
		{"unknown mood", func(s *MoodSnapshot) { s.Mood = "meh" }, "mood"},
		{"energy too high", func(s *MoodSnapshot) { s.EnergyLevel = 6 }, "energy_level"},
		{"energy too low", func(s *MoodSnapshot) { s.EnergyLevel = 0 }, "energy_level"},
		{"unknown complexity", func(s *MoodSnapshot) { s.Complexity = "extreme" }, "complexity"},
		{"satisfaction too low", func(s *MoodSnapshot) { s.Satisfaction = 0.9 }, "satisfaction"},
		{"satisfaction too high", func(s *MoodSnapshot) { s.Satisfaction = 10.1 }, "satisfaction"},
		{"missing user", func(s *MoodSnapshot) { s.UserID = 0 }, "user_id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validMoodSnapshot()
			tc.mutate(&s)

			err := s.Validate()
			var verrs *utils.ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected *ValidationErrors, got %v", err)
			}
			if len(verrs.Violations) != 1 {
				t.Fatalf("violations = %d, expected 1", len(verrs.Violations))
			}
			if verrs.Violations[0].Field != tc.field {
				t.Errorf("violation field = %q, expected %q", verrs.Violations[0].Field, tc.field)
			}
		})
	}
}

func TestMoodSnapshotValidate_SummaryAtLimitIsValid(t *testing.T) {
	s := validMoodSnapshot()
	s.Summary = strings.Repeat("a", 100)
	if err := s.Validate(); err != nil {
		t.Fatalf("100-character summary should be valid, got %v", err)
	}
}

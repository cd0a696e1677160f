package services

import (
	"context"
	"errors"
	"testing"

	"vibecheck/internal/models/db_models"
	"vibecheck/internal/models/request_models"
	"vibecheck/internal/repositories"
	"vibecheck/pkg/utils"
)

func newVibeLogServiceUnderTest(t *testing.T, client *stubSentimentClient) (VibeLogServiceInterface, repositories.VibeLogRepositoryInterface) {
	t.Helper()
	db := newTestDB(t)
	vibeLogRepo := repositories.NewVibeLogRepository(db)
	sentimentSvc := NewSentimentRatingService(repositories.NewSentimentRatingRepository(db), client)
	return NewVibeLogService(vibeLogRepo, sentimentSvc), vibeLogRepo
}

func TestVibeLogCreate_SucceedsWithoutSentimentService(t *testing.T) {
	svc, repo := newVibeLogServiceUnderTest(t, &stubSentimentClient{available: false})

	vibeLog, err := svc.Create(context.Background(), 1, request_models.CreateVibeLogRequest{
		Summary:      "Long day of incident response",
		Mood:         "angry",
		EnergyLevel:  2,
		Complexity:   "very_hard",
		Satisfaction: 2.5,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if vibeLog.ID == 0 {
		t.Error("created vibe log has no ID")
	}

	stored, err := repo.GetByID(context.Background(), vibeLog.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if stored == nil {
		t.Fatal("vibe log not persisted")
	}
	if stored.SentimentRating != nil {
		t.Errorf("SentimentRating = %v, expected nil when gateway unavailable", *stored.SentimentRating)
	}
}

func TestVibeLogCreate_RejectsInvalidInput(t *testing.T) {
	svc, _ := newVibeLogServiceUnderTest(t, &stubSentimentClient{available: false})

	_, err := svc.Create(context.Background(), 1, request_models.CreateVibeLogRequest{
		Summary:      "",
		Mood:         "meh",
		EnergyLevel:  0,
		Complexity:   "easy",
		Satisfaction: 5,
	})
	if !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestVibeLogUpdate_AppliesPartialChanges(t *testing.T) {
	svc, _ := newVibeLogServiceUnderTest(t, &stubSentimentClient{available: false})

	created, err := svc.Create(context.Background(), 1, request_models.CreateVibeLogRequest{
		Summary:      "Morning standup went fine",
		Mood:         "good",
		EnergyLevel:  3,
		Complexity:   "easy",
		Satisfaction: 6,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	newMood := "excited"
	newSatisfaction := 9.5
	updated, err := svc.Update(context.Background(), created.ID, 1, false, request_models.UpdateVibeLogRequest{
		Mood:         &newMood,
		Satisfaction: &newSatisfaction,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Mood != db_models.MoodExcited {
		t.Errorf("Mood = %q, expected excited", updated.Mood)
	}
	if updated.Satisfaction != 9.5 {
		t.Errorf("Satisfaction = %g, expected 9.5", updated.Satisfaction)
	}
	if updated.Summary != created.Summary {
		t.Errorf("Summary changed unexpectedly: %q", updated.Summary)
	}
}

func TestVibeLogUpdate_RevalidatesMergedState(t *testing.T) {
	svc, _ := newVibeLogServiceUnderTest(t, &stubSentimentClient{available: false})

	created, err := svc.Create(context.Background(), 1, request_models.CreateVibeLogRequest{
		Summary:      "Routine maintenance",
		Mood:         "good",
		EnergyLevel:  3,
		Complexity:   "medium",
		Satisfaction: 6,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	badEnergy := 11
	_, err = svc.Update(context.Background(), created.ID, 1, false, request_models.UpdateVibeLogRequest{
		EnergyLevel: &badEnergy,
	})
	if !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestVibeLogDelete_RemovesFromList(t *testing.T) {
	svc, _ := newVibeLogServiceUnderTest(t, &stubSentimentClient{available: false})

	created, err := svc.Create(context.Background(), 1, request_models.CreateVibeLogRequest{
		Summary:      "Wrapped up the sprint",
		Mood:         "happy",
		EnergyLevel:  4,
		Complexity:   "medium",
		Satisfaction: 8,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID, 1, false); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	logs, err := svc.ListByUser(context.Background(), 1, 1, 10)
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("list contains %d rows after delete, expected 0", len(logs))
	}

	if err := svc.Delete(context.Background(), created.ID, 1, false); !errors.Is(err, utils.ErrRecordNotFound) {
		t.Errorf("second delete: expected ErrRecordNotFound, got %v", err)
	}
}

func TestVibeLogAccess_OtherUsersForbidden(t *testing.T) {
	svc, _ := newVibeLogServiceUnderTest(t, &stubSentimentClient{available: false})

	created, err := svc.Create(context.Background(), 1, request_models.CreateVibeLogRequest{
		Summary:      "Private reflection",
		Mood:         "sad",
		EnergyLevel:  2,
		Complexity:   "hard",
		Satisfaction: 3,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.GetByID(context.Background(), created.ID, 2, false); !errors.Is(err, utils.ErrForbidden) {
		t.Errorf("GetByID as user 2: expected ErrForbidden, got %v", err)
	}

	newSummary := "overwritten"
	_, err = svc.Update(context.Background(), created.ID, 2, false, request_models.UpdateVibeLogRequest{
		Summary: &newSummary,
	})
	if !errors.Is(err, utils.ErrForbidden) {
		t.Errorf("Update as user 2: expected ErrForbidden, got %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID, 2, false); !errors.Is(err, utils.ErrForbidden) {
		t.Errorf("Delete as user 2: expected ErrForbidden, got %v", err)
	}

	// The record must be untouched for its owner.
	got, err := svc.GetByID(context.Background(), created.ID, 1, false)
	if err != nil {
		t.Fatalf("GetByID as owner returned error: %v", err)
	}
	if got.Summary != "Private reflection" {
		t.Errorf("Summary = %q, expected original text", got.Summary)
	}
}

func TestVibeLogAccess_SuperuserBypassesOwnership(t *testing.T) {
	svc, _ := newVibeLogServiceUnderTest(t, &stubSentimentClient{available: false})

	created, err := svc.Create(context.Background(), 1, request_models.CreateVibeLogRequest{
		Summary:      "Team retro notes",
		Mood:         "good",
		EnergyLevel:  3,
		Complexity:   "medium",
		Satisfaction: 7,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.GetByID(context.Background(), created.ID, 99, true); err != nil {
		t.Errorf("GetByID as superuser returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID, 99, true); err != nil {
		t.Errorf("Delete as superuser returned error: %v", err)
	}
}

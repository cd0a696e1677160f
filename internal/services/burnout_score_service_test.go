package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"vibecheck/internal/models/request_models"
	"vibecheck/internal/repositories"
	"vibecheck/pkg/utils"
)

func newBurnoutServiceUnderTest(t *testing.T) BurnoutScoreServiceInterface {
	t.Helper()
	return NewBurnoutScoreService(repositories.NewBurnoutScoreRepository(newTestDB(t)))
}

func burnoutRequest(userID uint, score float64) request_models.CreateBurnoutScoreRequest {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return request_models.CreateBurnoutScoreRequest{
		UserID:       userID,
		PeriodStart:  start,
		PeriodEnd:    start.AddDate(0, 0, 7),
		BurnoutScore: score,
	}
}

func TestBurnoutCreate_StoresScore(t *testing.T) {
	svc := newBurnoutServiceUnderTest(t)

	score, err := svc.Create(context.Background(), burnoutRequest(1, 42.5))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if score.ID == 0 {
		t.Error("created score has no ID")
	}
	if score.BurnoutScore != 42.5 {
		t.Errorf("BurnoutScore = %g, expected 42.5", score.BurnoutScore)
	}
}

func TestBurnoutCreate_RejectsInvalidInput(t *testing.T) {
	svc := newBurnoutServiceUnderTest(t)

	req := burnoutRequest(1, 150)
	req.PeriodEnd = req.PeriodStart
	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	var verrs *utils.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected *ValidationErrors, got %T", err)
	}
	if len(verrs.Violations) != 2 {
		t.Errorf("violations = %d, expected 2 (period_end, burnout_score)", len(verrs.Violations))
	}
}

func TestBurnoutListByUser_FiltersOtherUsers(t *testing.T) {
	svc := newBurnoutServiceUnderTest(t)

	for _, userID := range []uint{1, 1, 2} {
		if _, err := svc.Create(context.Background(), burnoutRequest(userID, 30)); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	scores, err := svc.ListByUser(context.Background(), 1, 1, 10)
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(scores) != 2 {
		t.Errorf("scores = %d, expected 2", len(scores))
	}

	all, err := svc.ListAll(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all scores = %d, expected 3", len(all))
	}
}

func TestBurnoutDelete_MissingRecordReturnsNotFound(t *testing.T) {
	svc := newBurnoutServiceUnderTest(t)

	if err := svc.Delete(context.Background(), 404); !errors.Is(err, utils.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

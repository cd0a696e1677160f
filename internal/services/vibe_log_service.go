package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"vibecheck/internal/models/db_models"
	"vibecheck/internal/models/request_models"
	"vibecheck/internal/repositories"
	"vibecheck/pkg/utils"
)

type VibeLogServiceInterface interface {
	// Create validates and stores the journal entry, then fires a detached
	// background task that asks the sentiment service to rate it. The create
	// never fails because of the enrichment.
	Create(ctx context.Context, userID uint, request request_models.CreateVibeLogRequest) (*db_models.VibeLog, error)

	// GetByID, Update and Delete enforce owner-or-superuser access:
	// requesterID must match the log's UserID unless superuser is set.
	GetByID(ctx context.Context, id, requesterID uint, superuser bool) (*db_models.VibeLog, error)
	ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]db_models.VibeLog, error)
	Update(ctx context.Context, id, requesterID uint, superuser bool, request request_models.UpdateVibeLogRequest) (*db_models.VibeLog, error)
	Delete(ctx context.Context, id, requesterID uint, superuser bool) error
}

const sentimentEnrichTimeout = 60 * time.Second

type VibeLogService struct {
	vibeLogRepo repositories.VibeLogRepositoryInterface
	sentiment   SentimentRatingServiceInterface
}

func NewVibeLogService(
	vibeLogRepo repositories.VibeLogRepositoryInterface,
	sentiment SentimentRatingServiceInterface,
) VibeLogServiceInterface {
	return &VibeLogService{
		vibeLogRepo: vibeLogRepo,
		sentiment:   sentiment,
	}
}

func (s *VibeLogService) Create(ctx context.Context, userID uint, request request_models.CreateVibeLogRequest) (*db_models.VibeLog, error) {
	snapshot := request_models.MoodSnapshot{
		UserID:       userID,
		Summary:      request.Summary,
		Mood:         db_models.Mood(request.Mood),
		EnergyLevel:  request.EnergyLevel,
		Complexity:   db_models.Complexity(request.Complexity),
		Satisfaction: request.Satisfaction,
	}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	vibeLog := &db_models.VibeLog{
		UserID:       userID,
		Summary:      snapshot.Summary,
		Mood:         snapshot.Mood,
		EnergyLevel:  snapshot.EnergyLevel,
		Complexity:   snapshot.Complexity,
		Satisfaction: snapshot.Satisfaction,
	}
	if err := s.vibeLogRepo.Create(ctx, vibeLog); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	go s.enrichSentiment(vibeLog.ID, snapshot)

	return vibeLog, nil
}

// enrichSentiment runs detached from the request lifecycle; the vibe log
// keeps a nil sentiment_rating when the service is unavailable or the run
// fails.
func (s *VibeLogService) enrichSentiment(vibeLogID uint, snapshot request_models.MoodSnapshot) {
	if !s.sentiment.IsServiceAvailable() {
		log.Printf("skipping sentiment enrichment for vibe log %d: service unavailable", vibeLogID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sentimentEnrichTimeout)
	defer cancel()

	payload, err := s.sentiment.Analyze(ctx, snapshot, "")
	if err != nil {
		log.Printf("sentiment enrichment failed for vibe log %d: %v", vibeLogID, err)
		return
	}

	if err := s.vibeLogRepo.UpdateSentimentRating(ctx, vibeLogID, payload.SentimentRating); err != nil {
		log.Printf("failed to store sentiment rating for vibe log %d: %v", vibeLogID, err)
		return
	}
	log.Printf("vibe log %d enriched with sentiment rating %.1f", vibeLogID, payload.SentimentRating)
}

func (s *VibeLogService) GetByID(ctx context.Context, id, requesterID uint, superuser bool) (*db_models.VibeLog, error) {
	vibeLog, err := s.vibeLogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if vibeLog == nil {
		return nil, utils.ErrRecordNotFound
	}
	if vibeLog.UserID != requesterID && !superuser {
		return nil, utils.ErrForbidden
	}
	return vibeLog, nil
}

func (s *VibeLogService) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]db_models.VibeLog, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	vibeLogs, err := s.vibeLogRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return vibeLogs, nil
}

func (s *VibeLogService) Update(ctx context.Context, id, requesterID uint, superuser bool, request request_models.UpdateVibeLogRequest) (*db_models.VibeLog, error) {
	vibeLog, err := s.GetByID(ctx, id, requesterID, superuser)
	if err != nil {
		return nil, err
	}

	if request.Summary != nil {
		vibeLog.Summary = *request.Summary
	}
	if request.Mood != nil {
		vibeLog.Mood = db_models.Mood(*request.Mood)
	}
	if request.EnergyLevel != nil {
		vibeLog.EnergyLevel = *request.EnergyLevel
	}
	if request.Complexity != nil {
		vibeLog.Complexity = db_models.Complexity(*request.Complexity)
	}
	if request.Satisfaction != nil {
		vibeLog.Satisfaction = *request.Satisfaction
	}

	snapshot := request_models.MoodSnapshot{
		UserID:       vibeLog.UserID,
		Summary:      vibeLog.Summary,
		Mood:         vibeLog.Mood,
		EnergyLevel:  vibeLog.EnergyLevel,
		Complexity:   vibeLog.Complexity,
		Satisfaction: vibeLog.Satisfaction,
	}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	if err := s.vibeLogRepo.Update(ctx, vibeLog); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrRecordNotFound
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return vibeLog, nil
}

func (s *VibeLogService) Delete(ctx context.Context, id, requesterID uint, superuser bool) error {
	if _, err := s.GetByID(ctx, id, requesterID, superuser); err != nil {
		return err
	}
	if err := s.vibeLogRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrRecordNotFound
		}
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

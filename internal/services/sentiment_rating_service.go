package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"vibecheck/internal/models/db_models"
	"vibecheck/internal/models/request_models"
	"vibecheck/internal/models/response_models"
	"vibecheck/internal/repositories"
	"vibecheck/pkg/utils"
)

type SentimentRatingServiceInterface interface {
	// AnalyzeAndCreate runs the full pipeline: validate, check availability,
	// build prompts, call the gateway, validate the response, persist. The
	// first error at any stage aborts the rest; a row is written only after
	// the response passes validation.
	AnalyzeAndCreate(ctx context.Context, input request_models.MoodSnapshot, model string) (*db_models.SentimentRating, error)

	// Analyze runs the same pipeline without the storage write.
	Analyze(ctx context.Context, input request_models.MoodSnapshot, model string) (*utils.SentimentPayload, error)

	// BatchAnalyzeAndCreate processes each snapshot independently and keeps
	// going past per-item failures.
	BatchAnalyzeAndCreate(ctx context.Context, inputs []request_models.MoodSnapshot, model string) []response_models.BatchItemResult

	ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]db_models.SentimentRating, error)
	GetByID(ctx context.Context, id uint) (*db_models.SentimentRating, error)
	StatsByUser(ctx context.Context, userID uint) (*response_models.SentimentStats, error)
	Delete(ctx context.Context, id uint) error

	// IsServiceAvailable reports whether the gateway credential is present.
	IsServiceAvailable() bool
}

type SentimentRatingService struct {
	ratingRepo repositories.SentimentRatingRepositoryInterface
	aiClient   utils.SentimentClientInterface
}

func NewSentimentRatingService(
	ratingRepo repositories.SentimentRatingRepositoryInterface,
	aiClient utils.SentimentClientInterface,
) SentimentRatingServiceInterface {
	return &SentimentRatingService{
		ratingRepo: ratingRepo,
		aiClient:   aiClient,
	}
}

func (s *SentimentRatingService) AnalyzeAndCreate(ctx context.Context, input request_models.MoodSnapshot, model string) (*db_models.SentimentRating, error) {
	payload, err := s.Analyze(ctx, input, model)
	if err != nil {
		return nil, err
	}

	record := &db_models.SentimentRating{
		UserID:          input.UserID,
		Summary:         input.Summary,
		Mood:            input.Mood,
		EnergyLevel:     input.EnergyLevel,
		Complexity:      input.Complexity,
		Satisfaction:    input.Satisfaction,
		SentimentRating: payload.SentimentRating,
	}
	if err := s.ratingRepo.Create(ctx, record); err != nil {
		log.Printf("sentiment persist failed for user %d: %v", input.UserID, err)
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	log.Printf("created sentiment rating %d (%.1f) for user %d", record.ID, record.SentimentRating, record.UserID)
	return record, nil
}

func (s *SentimentRatingService) Analyze(ctx context.Context, input request_models.MoodSnapshot, model string) (*utils.SentimentPayload, error) {
	if err := input.Validate(); err != nil {
		log.Printf("sentiment validation failed for user %d: %v", input.UserID, err)
		return nil, err
	}
	if err := s.validateModelSelector(model); err != nil {
		return nil, err
	}

	if !s.aiClient.IsAvailable() {
		log.Printf("sentiment analysis requested for user %d but service is unavailable", input.UserID)
		return nil, utils.ErrAIServiceUnavailable
	}

	userPrompt := buildSentimentUserPrompt(input)

	payload, err := s.aiClient.GenerateSentimentRating(ctx, sentimentSystemPrompt, userPrompt, model)
	if err != nil {
		log.Printf("sentiment gateway call failed for user %d: %v", input.UserID, err)
		return nil, err
	}

	if err := validateSentimentPayload(payload, input.UserID); err != nil {
		log.Printf("sentiment response rejected for user %d: %v", input.UserID, err)
		return nil, err
	}

	return payload, nil
}

func (s *SentimentRatingService) BatchAnalyzeAndCreate(ctx context.Context, inputs []request_models.MoodSnapshot, model string) []response_models.BatchItemResult {
	results := make([]response_models.BatchItemResult, 0, len(inputs))
	for _, input := range inputs {
		record, err := s.AnalyzeAndCreate(ctx, input, model)
		if err != nil {
			log.Printf("batch sentiment item failed for user %d: %v", input.UserID, err)
			results = append(results, response_models.BatchItemResult{
				UserID: input.UserID,
				Error:  err.Error(),
			})
			continue
		}
		results = append(results, response_models.BatchItemResult{
			UserID: record.UserID,
			Rating: record,
		})
	}
	return results
}

func (s *SentimentRatingService) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]db_models.SentimentRating, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	ratings, err := s.ratingRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return ratings, nil
}

func (s *SentimentRatingService) GetByID(ctx context.Context, id uint) (*db_models.SentimentRating, error) {
	rating, err := s.ratingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if rating == nil {
		return nil, utils.ErrRecordNotFound
	}
	return rating, nil
}

func (s *SentimentRatingService) StatsByUser(ctx context.Context, userID uint) (*response_models.SentimentStats, error) {
	stats, err := s.ratingRepo.StatsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return stats, nil
}

func (s *SentimentRatingService) Delete(ctx context.Context, id uint) error {
	if err := s.ratingRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrRecordNotFound
		}
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *SentimentRatingService) IsServiceAvailable() bool {
	return s.aiClient.IsAvailable()
}

func (s *SentimentRatingService) validateModelSelector(model string) error {
	if model == "" {
		return nil
	}
	for _, m := range s.aiClient.SupportedModels() {
		if m == model {
			return nil
		}
	}
	errs := &utils.ValidationErrors{}
	errs.Add("model", fmt.Sprintf("unsupported model %q; supported: %v", model, s.aiClient.SupportedModels()))
	return errs
}

package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vibecheck/internal/models/db_models"
	"vibecheck/internal/models/request_models"
	"vibecheck/internal/repositories"
	"vibecheck/pkg/utils"
)

type BurnoutScoreServiceInterface interface {
	Create(ctx context.Context, request request_models.CreateBurnoutScoreRequest) (*db_models.BurnoutScore, error)
	ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]db_models.BurnoutScore, error)
	ListAll(ctx context.Context, page, pageSize int) ([]db_models.BurnoutScore, error)
	Delete(ctx context.Context, id uint) error
}

type BurnoutScoreService struct {
	burnoutRepo repositories.BurnoutScoreRepositoryInterface
}

func NewBurnoutScoreService(burnoutRepo repositories.BurnoutScoreRepositoryInterface) BurnoutScoreServiceInterface {
	return &BurnoutScoreService{burnoutRepo: burnoutRepo}
}

func (s *BurnoutScoreService) Create(ctx context.Context, request request_models.CreateBurnoutScoreRequest) (*db_models.BurnoutScore, error) {
	errs := &utils.ValidationErrors{}
	if !request.PeriodEnd.After(request.PeriodStart) {
		errs.Add("period_end", "must be after period_start")
	}
	if request.BurnoutScore < 0 || request.BurnoutScore > 100 {
		errs.Add("burnout_score", "must be between 0 and 100")
	}
	if errs.HasViolations() {
		return nil, errs
	}

	score := &db_models.BurnoutScore{
		UserID:       request.UserID,
		PeriodStart:  request.PeriodStart,
		PeriodEnd:    request.PeriodEnd,
		BurnoutScore: request.BurnoutScore,
	}
	if err := s.burnoutRepo.Create(ctx, score); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return score, nil
}

func (s *BurnoutScoreService) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]db_models.BurnoutScore, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	scores, err := s.burnoutRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return scores, nil
}

func (s *BurnoutScoreService) ListAll(ctx context.Context, page, pageSize int) ([]db_models.BurnoutScore, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	scores, err := s.burnoutRepo.ListAll(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return scores, nil
}

func (s *BurnoutScoreService) Delete(ctx context.Context, id uint) error {
	if err := s.burnoutRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrRecordNotFound
		}
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

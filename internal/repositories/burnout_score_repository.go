package repositories

import (
	"context"

	"gorm.io/gorm"

	"vibecheck/internal/models/db_models"
)

type BurnoutScoreRepositoryInterface interface {
	Create(ctx context.Context, score *db_models.BurnoutScore) error
	ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]db_models.BurnoutScore, error)
	ListAll(ctx context.Context, page, pageSize int) ([]db_models.BurnoutScore, error)
	SoftDelete(ctx context.Context, id uint) error
}

type burnoutScoreRepository struct {
	db *gorm.DB
}

func NewBurnoutScoreRepository(db *gorm.DB) BurnoutScoreRepositoryInterface {
	return &burnoutScoreRepository{db: db}
}

func (r *burnoutScoreRepository) Create(ctx context.Context, score *db_models.BurnoutScore) error {
	return r.db.WithContext(ctx).Create(score).Error
}

func (r *burnoutScoreRepository) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]db_models.BurnoutScore, error) {
	var scores []db_models.BurnoutScore
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("period_start DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&scores).Error
	return scores, err
}

func (r *burnoutScoreRepository) ListAll(ctx context.Context, page, pageSize int) ([]db_models.BurnoutScore, error) {
	var scores []db_models.BurnoutScore
	err := r.db.WithContext(ctx).
		Order("period_start DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&scores).Error
	return scores, err
}

func (r *burnoutScoreRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&db_models.BurnoutScore{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

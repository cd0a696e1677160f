package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vibecheck/internal/models/db_models"
)

type VibeLogRepositoryInterface interface {
	Create(ctx context.Context, vibeLog *db_models.VibeLog) error
	GetByID(ctx context.Context, id uint) (*db_models.VibeLog, error)
	ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]db_models.VibeLog, error)
	Update(ctx context.Context, vibeLog *db_models.VibeLog) error
	UpdateSentimentRating(ctx context.Context, id uint, rating float64) error
	SoftDelete(ctx context.Context, id uint) error
}

type vibeLogRepository struct {
	db *gorm.DB
}

func NewVibeLogRepository(db *gorm.DB) VibeLogRepositoryInterface {
	return &vibeLogRepository{db: db}
}

func (r *vibeLogRepository) Create(ctx context.Context, vibeLog *db_models.VibeLog) error {
	return r.db.WithContext(ctx).Create(vibeLog).Error
}

func (r *vibeLogRepository) GetByID(ctx context.Context, id uint) (*db_models.VibeLog, error) {
	var vibeLog db_models.VibeLog
	err := r.db.WithContext(ctx).First(&vibeLog, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vibeLog, nil
}

func (r *vibeLogRepository) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]db_models.VibeLog, error) {
	var vibeLogs []db_models.VibeLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&vibeLogs).Error
	return vibeLogs, err
}

func (r *vibeLogRepository) Update(ctx context.Context, vibeLog *db_models.VibeLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(vibeLog)
		if result.Error != nil {
			return fmt.Errorf("failed to update vibe log: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *vibeLogRepository) UpdateSentimentRating(ctx context.Context, id uint, rating float64) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.VibeLog{}).
		Where("id = ?", id).
		Update("sentiment_rating", rating)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *vibeLogRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&db_models.VibeLog{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vibecheck/internal/models/db_models"
	"vibecheck/internal/models/response_models"
)

type SentimentRatingRepositoryInterface interface {
	Create(ctx context.Context, rating *db_models.SentimentRating) error
	// GetByID is an explicit identifier lookup and therefore includes
	// soft-deleted rows.
	GetByID(ctx context.Context, id uint) (*db_models.SentimentRating, error)
	ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]db_models.SentimentRating, error)
	StatsByUser(ctx context.Context, userID uint) (*response_models.SentimentStats, error)
	SoftDelete(ctx context.Context, id uint) error
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

type sentimentRatingRepository struct {
	db *gorm.DB
}

func NewSentimentRatingRepository(db *gorm.DB) SentimentRatingRepositoryInterface {
	return &sentimentRatingRepository{db: db}
}

func (r *sentimentRatingRepository) Create(ctx context.Context, rating *db_models.SentimentRating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *sentimentRatingRepository) GetByID(ctx context.Context, id uint) (*db_models.SentimentRating, error) {
	var rating db_models.SentimentRating
	err := r.db.WithContext(ctx).Unscoped().First(&rating, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

func (r *sentimentRatingRepository) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]db_models.SentimentRating, error) {
	var ratings []db_models.SentimentRating
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&ratings).Error
	return ratings, err
}

func (r *sentimentRatingRepository) StatsByUser(ctx context.Context, userID uint) (*response_models.SentimentStats, error) {
	var stats response_models.SentimentStats
	err := r.db.WithContext(ctx).
		Model(&db_models.SentimentRating{}).
		Select("COUNT(id) AS total_count, " +
			"COALESCE(AVG(sentiment_rating), 0) AS average_rating, " +
			"COALESCE(MIN(sentiment_rating), 0) AS min_rating, " +
			"COALESCE(MAX(sentiment_rating), 0) AS max_rating").
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *sentimentRatingRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&db_models.SentimentRating{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *sentimentRatingRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.SentimentRating{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

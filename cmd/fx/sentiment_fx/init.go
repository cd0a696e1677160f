package sentiment_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vibecheck/internal/api/controllers"
	"vibecheck/internal/repositories"
	"vibecheck/internal/services"
	"vibecheck/pkg/utils"
)

var Module = fx.Provide(
	provideSentimentRatingRepo, provideSentimentRatingService, provideSentimentRatingController)

func provideSentimentRatingRepo(db *gorm.DB) repositories.SentimentRatingRepositoryInterface {
	return repositories.NewSentimentRatingRepository(db)
}

func provideSentimentRatingService(
	ratingRepo repositories.SentimentRatingRepositoryInterface,
	aiClient utils.SentimentClientInterface,
) services.SentimentRatingServiceInterface {
	return services.NewSentimentRatingService(ratingRepo, aiClient)
}

func provideSentimentRatingController(sentimentService services.SentimentRatingServiceInterface) *controllers.SentimentRatingController {
	return controllers.NewSentimentRatingController(sentimentService)
}

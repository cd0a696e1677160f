package health_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vibecheck/internal/api/controllers"
	"vibecheck/internal/services"
)

var Module = fx.Provide(
	provideHealthController)

func provideHealthController(db *gorm.DB, sentimentService services.SentimentRatingServiceInterface) *controllers.HealthController {
	return controllers.NewHealthController(db, sentimentService)
}

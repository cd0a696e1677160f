package vibelog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vibecheck/internal/api/controllers"
	"vibecheck/internal/repositories"
	"vibecheck/internal/services"
)

var Module = fx.Provide(
	provideVibeLogRepo, provideVibeLogService, provideVibeLogController)

func provideVibeLogRepo(db *gorm.DB) repositories.VibeLogRepositoryInterface {
	return repositories.NewVibeLogRepository(db)
}

func provideVibeLogService(
	vibeLogRepo repositories.VibeLogRepositoryInterface,
	sentimentService services.SentimentRatingServiceInterface,
) services.VibeLogServiceInterface {
	return services.NewVibeLogService(vibeLogRepo, sentimentService)
}

func provideVibeLogController(vibeLogService services.VibeLogServiceInterface) *controllers.VibeLogController {
	return controllers.NewVibeLogController(vibeLogService)
}

package burnout_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vibecheck/internal/api/controllers"
	"vibecheck/internal/repositories"
	"vibecheck/internal/services"
)

var Module = fx.Provide(
	provideBurnoutScoreRepo, provideBurnoutScoreService, provideBurnoutScoreController)

func provideBurnoutScoreRepo(db *gorm.DB) repositories.BurnoutScoreRepositoryInterface {
	return repositories.NewBurnoutScoreRepository(db)
}

func provideBurnoutScoreService(burnoutRepo repositories.BurnoutScoreRepositoryInterface) services.BurnoutScoreServiceInterface {
	return services.NewBurnoutScoreService(burnoutRepo)
}

func provideBurnoutScoreController(burnoutService services.BurnoutScoreServiceInterface) *controllers.BurnoutScoreController {
	return controllers.NewBurnoutScoreController(burnoutService)
}

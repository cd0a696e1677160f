package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vibecheck/internal/api/controllers"
	"vibecheck/internal/repositories"
	"vibecheck/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAccountService, provideAccountController)

func provideUserRepo(db *gorm.DB) repositories.UserRepositoryInterface {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepositoryInterface) services.AccountServiceInterface {
	return services.NewAccountService(userRepo)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}

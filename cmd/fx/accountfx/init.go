package accountfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"trailmix/internal/api/controllers"
	"trailmix/internal/repositories"
	"trailmix/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo,
	provideAccountService,
	controllers.NewAccountController,
)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}

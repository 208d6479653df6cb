package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"surveyforge/internal/api/controllers"
	"surveyforge/internal/repositories"
	"surveyforge/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, controllers.NewAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}

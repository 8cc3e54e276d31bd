package accountfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wander/internal/repositories"
	"wander/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, providePreferenceRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func providePreferenceRepo(db *gorm.DB) repositories.PreferenceRepository {
	return repositories.NewPreferenceRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, preferenceRepo repositories.PreferenceRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, preferenceRepo)
}

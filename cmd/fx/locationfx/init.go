package locationfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wander/internal/repositories"
	"wander/internal/services"
)

var Module = fx.Provide(
	provideLocationRepo, provideDestinationSource, provideLocationService)

func provideLocationRepo(db *gorm.DB) repositories.LocationRepository {
	return repositories.NewLocationRepository(db)
}

func provideDestinationSource(locationRepo repositories.LocationRepository) services.DestinationSource {
	return services.NewRepositoryDestinationSource(locationRepo)
}

func provideLocationService(locationRepo repositories.LocationRepository, source services.DestinationSource) services.LocationServiceInterface {
	return services.NewLocationService(locationRepo, source)
}

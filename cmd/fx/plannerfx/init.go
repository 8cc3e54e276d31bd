package plannerfx

import (
	"go.uber.org/fx"
	"wander/internal/repositories"
	"wander/internal/services"
)

var Module = fx.Provide(providePlannerService)

func providePlannerService(source services.DestinationSource, itineraryRepo repositories.ItineraryRepository) services.PlannerServiceInterface {
	// nil picker = production randomness
	return services.NewPlannerService(source, itineraryRepo, nil)
}

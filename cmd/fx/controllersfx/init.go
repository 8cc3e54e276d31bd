package controllersfx

import (
	"go.uber.org/fx"
	"wander/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewLocationsController,
	controllers.NewItinerariesController,
	controllers.NewPlannerController,
)

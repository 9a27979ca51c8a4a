package controllers_fx

import (
	"go.uber.org/fx"

	"tripplanner/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPOIsController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewJourneyController),
	fx.Provide(controllers.NewItineraryController))

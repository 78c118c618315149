package controllers_fx

import (
	"go.uber.org/fx"

	"gainsystem/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewBusinessController),
	fx.Provide(controllers.NewCalendarController),
	fx.Provide(controllers.NewFinanceController))

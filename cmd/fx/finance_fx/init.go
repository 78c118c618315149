package finance_fx

import (
	"go.uber.org/fx"

	"gainsystem/internal/repositories"
	"gainsystem/internal/services"
)

var Module = fx.Provide(
	repositories.NewFinanceRepository,
	services.NewFinanceService)

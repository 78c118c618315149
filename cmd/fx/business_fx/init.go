package business_fx

import (
	"go.uber.org/fx"

	"gainsystem/internal/repositories"
	"gainsystem/internal/services"
)

var Module = fx.Provide(
	repositories.NewBusinessRepository,
	repositories.NewTeamRepository,
	repositories.NewClientRepository,
	repositories.NewOwnershipRepository,
	services.NewBusinessService)

package auth_fx

import (
	"go.uber.org/fx"

	"gainsystem/internal/auth"
	"gainsystem/internal/repositories"
	"gainsystem/internal/services"
)

var Module = fx.Provide(
	auth.NewJWTManager,
	repositories.NewUserRepository,
	repositories.NewTokenRepository,
	services.NewAuthService)

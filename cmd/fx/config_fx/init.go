package config_fx

import (
	"go.uber.org/fx"

	"gainsystem/pkg/config"
)

var Module = fx.Provide(
	config.Load)

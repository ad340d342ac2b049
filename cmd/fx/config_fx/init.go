package config_fx

import (
	"go.uber.org/fx"

	"tripcraft/internal/config"
)

var Module = fx.Provide(config.Load)

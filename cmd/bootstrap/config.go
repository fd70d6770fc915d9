package bootstrap

import (
	"go.uber.org/fx"

	"ecommerce-api/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

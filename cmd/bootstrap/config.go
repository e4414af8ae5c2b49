package bootstrap

import (
	"github.com/javier-f-ramos/clasifica2/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

package dbfx

import (
	"go.uber.org/fx"

	"trailmix/internal/infra"
)

var Module = fx.Provide(
	infra.LoadConfig,
	infra.InitPostgresql,
)

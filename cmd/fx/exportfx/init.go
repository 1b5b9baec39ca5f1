package exportfx

import (
	"go.uber.org/fx"

	"trailmix/internal/api/controllers"
	"trailmix/internal/infra"
	"trailmix/internal/services"
)

var Module = fx.Provide(
	provideExportService,
	controllers.NewExportController,
)

func provideExportService(cfg *infra.Config) services.ExportServiceInterface {
	return services.NewExportService(cfg.ShareBaseURL)
}

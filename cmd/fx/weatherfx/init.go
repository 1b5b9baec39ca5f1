package weatherfx

import (
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/fx"

	"trailmix/internal/api/controllers"
	"trailmix/internal/infra"
	"trailmix/internal/services"
)

var Module = fx.Provide(
	provideWeatherService,
	controllers.NewWeatherController,
)

func provideWeatherService(cfg *infra.Config) services.WeatherServiceInterface {
	// Bounded timeout so a slow provider degrades to mock data instead of
	// hanging the request.
	client := &http.Client{Timeout: 5 * time.Second}
	return services.NewOpenWeatherService(client, cfg.WeatherAPIKey,
		rand.New(rand.NewSource(time.Now().UnixNano())))
}

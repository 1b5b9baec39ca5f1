package mapfx

import (
	"math/rand"
	"time"

	"go.uber.org/fx"

	"trailmix/internal/services"
)

var Module = fx.Provide(
	provideMapService,
)

func provideMapService() services.MapServiceInterface {
	return services.NewStaticMapService(rand.New(rand.NewSource(time.Now().UnixNano())))
}

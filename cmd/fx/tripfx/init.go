package tripfx

import (
	"math/rand"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"trailmix/internal/api/controllers"
	"trailmix/internal/itinerary"
	"trailmix/internal/repositories"
	"trailmix/internal/services"
)

var Module = fx.Provide(
	provideGenerator,
	provideTripRepo,
	provideTripService,
	controllers.NewTripController,
)

func provideGenerator() *itinerary.Generator {
	return itinerary.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, generator *itinerary.Generator) services.TripServiceInterface {
	return services.NewTripService(tripRepo, generator)
}

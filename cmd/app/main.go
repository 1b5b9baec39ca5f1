package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"trailmix/cmd/fx/accountfx"
	"trailmix/cmd/fx/dbfx"
	"trailmix/cmd/fx/exportfx"
	"trailmix/cmd/fx/mapfx"
	"trailmix/cmd/fx/tripfx"
	"trailmix/cmd/fx/weatherfx"
	"trailmix/internal/api/controllers"
	"trailmix/internal/infra"
	"trailmix/pkg/middleware"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	app := fx.New(
		dbfx.Module,
		accountfx.Module,
		tripfx.Module,
		weatherfx.Module,
		mapfx.Module,
		exportfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				zap.L().Info("starting HTTP server", zap.String("port", cfg.Port))
				if err := engine.Run(":" + cfg.Port); err != nil {
					zap.L().Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			zap.L().Info("stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	weatherController *controllers.WeatherController,
	exportController *controllers.ExportController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware(20, 40))
	r.Use(middleware.OptionalAuthMiddleware())

	RegisterRoutes(r, tripController, weatherController, exportController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	weatherController *controllers.WeatherController,
	exportController *controllers.ExportController,
	accountController *controllers.AccountController) {

	r.POST("/trips", tripController.CreateTrip)
	r.GET("/trips", tripController.ListTrips)
	r.GET("/trips/:id", tripController.GetTrip)
	r.PUT("/trips/:id", tripController.UpdateTrip)
	r.DELETE("/trips/:id", tripController.DeleteTrip)
	r.POST("/regenerate-day", tripController.RegenerateDay)

	r.GET("/weather", weatherController.GetForecast)

	r.GET("/trips/:id/map", exportController.GetMap)
	r.GET("/trips/:id/export/pdf", exportController.ExportPDF)
	r.GET("/trips/:id/share", exportController.GetShareLinks)
	r.GET("/trips/:id/share/qr", exportController.GetShareQR)

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"trailmix/internal/services"
	"trailmix/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
	}
}

// GetForecast godoc
// @Summary Get a daily forecast for the trip window
// @Tags Weather
// @Produce json
// @Param city query string true "City name"
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Router /weather [get]
func (w *WeatherController) GetForecast(c *gin.Context) {
	city := c.Query("city")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	if city == "" || startDate == "" || endDate == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing required parameters: city, startDate, endDate")
		return
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid startDate")
		return
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil || end.Before(start) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid endDate")
		return
	}

	forecast, err := w.weatherService.Forecast(c.Request.Context(), city, start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"data": forecast})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trailmix/internal/models/request_models"
	"trailmix/internal/services"
	"trailmix/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// CreateTrip godoc
// @Summary Create a trip with a generated itinerary
// @Description Validate the trip request, generate the day-by-day itinerary and persist everything
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip parameters"
// @Success 201 {object} response_models.TripResponse
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields: city, startDate, endDate, budgetBand, pace")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, gin.H{"trip": trip})
}

// ListTrips godoc
// @Summary List trips
// @Description Fetch trips, optionally filtered by owner
// @Tags Trips
// @Produce json
// @Param ownerId query string false "Owner account ID"
// @Success 200 {array} response_models.TripResponse
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	trips, err := t.tripService.ListTrips(c.Request.Context(), c.Query("ownerId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"trips": trips})
}

// GetTrip godoc
// @Summary Get one trip with its full itinerary
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} response_models.TripResponse
// @Failure 404 {object} map[string]interface{}
// @Router /trips/{id} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	tripId := c.Param("id")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	trip, err := t.tripService.GetTrip(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"trip": trip})
}

// UpdateTrip godoc
// @Summary Update a trip's budget band, pace or food preferences
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Router /trips/{id} [put]
func (t *TripController) UpdateTrip(c *gin.Context) {
	tripId := c.Param("id")

	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), tripId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"trip": trip})
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Router /trips/{id} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	if err := t.tripService.DeleteTrip(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"message": "Trip deleted successfully"})
}

// RegenerateDay godoc
// @Summary Replace one day's stops with a freshly generated set
// @Description Pick a theme (preferred or random), regenerate the stops and swap them atomically
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.RegenerateDayRequest true "Regeneration parameters"
// @Success 200 {object} response_models.DayResponse
// @Failure 404 {object} map[string]interface{}
// @Router /regenerate-day [post]
func (t *TripController) RegenerateDay(c *gin.Context) {
	var req request_models.RegenerateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	day, err := t.tripService.RegenerateDay(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"day": day})
}

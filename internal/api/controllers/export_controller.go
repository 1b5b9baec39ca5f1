package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"trailmix/internal/services"
	"trailmix/pkg/utils"
)

// ExportController serves the map view, PDF download and share payloads for a
// persisted trip.
type ExportController struct {
	tripService   services.TripServiceInterface
	mapService    services.MapServiceInterface
	exportService services.ExportServiceInterface
}

func NewExportController(
	tripService services.TripServiceInterface,
	mapService services.MapServiceInterface,
	exportService services.ExportServiceInterface,
) *ExportController {
	return &ExportController{
		tripService:   tripService,
		mapService:    mapService,
		exportService: exportService,
	}
}

func (e *ExportController) GetMap(c *gin.Context) {
	trip, err := e.tripService.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"map": e.mapService.BuildView(trip)})
}

func (e *ExportController) ExportPDF(c *gin.Context) {
	trip, err := e.tripService.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	doc, err := e.exportService.RenderPDF(trip)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("%s-itinerary.pdf", utils.Slugify(trip.City))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", doc)
}

func (e *ExportController) GetShareLinks(c *gin.Context) {
	trip, err := e.tripService.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"share": e.exportService.ShareLinks(trip)})
}

func (e *ExportController) GetShareQR(c *gin.Context) {
	tripId := c.Param("id")

	// Only mint QR codes for trips that exist.
	if _, err := e.tripService.GetTrip(c.Request.Context(), tripId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	png, err := e.exportService.ShareQRCode(tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

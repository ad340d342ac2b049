package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripcraft/internal/models/request_models"
	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	logger           *zap.Logger
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, logger *zap.Logger) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// GenerateItineraryHandler godoc
// POST /itinerary/generate
func (i *ItineraryController) GenerateItineraryHandler(c *gin.Context) {
	var req request_models.TravelPreferences
	if err := c.ShouldBindJSON(&req); err != nil {
		i.logger.Debug("rejected travel preferences", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, i.logger, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary generated successfully")
}

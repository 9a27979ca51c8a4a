package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type JourneyController struct {
	journeyService services.JourneyServiceInterface
}

func NewJourneyController(journeyService services.JourneyServiceInterface) *JourneyController {
	return &JourneyController{
		journeyService: journeyService,
	}
}

// GetJourneyByUserId godoc
// @Summary Get journeys by user ID
// @Description Fetch a paginated list of journeys for the authenticated user
// @Tags Journey
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(5) minimum(1) maximum(100)
// @Success 200 {array} []response_models.JourneyResponse
// @Security BearerAuth
// @Router /journeys [get]
func (j *JourneyController) GetJourneyByUserId(c *gin.Context) {
	page, pageSize, ok := pageParams(c, 5)
	if !ok {
		return
	}

	journeys, err := j.journeyService.GetListOfJourneyByUserId(c.Request.Context(), page, pageSize, currentUser(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, journeys, "Journeys fetched successfully")
}

// GetDetailsInfoOfJourneyById godoc
// @Summary Get journey details by ID
// @Description Fetch a stored itinerary with its days and stops
// @Tags Journey
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys/{journeyId} [get]
func (j *JourneyController) GetDetailsInfoOfJourneyById(c *gin.Context) {
	journeyId := c.Param("journeyId")
	if journeyId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Journey ID is required")
		return
	}

	journey, err := j.journeyService.GetDetailsInfoOfJourneyById(c.Request.Context(), currentUser(c), journeyId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, journey, "Journey details fetched successfully")
}

// DeleteJourney godoc
// @Summary Delete a journey
// @Tags Journey
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys/{journeyId} [delete]
func (j *JourneyController) DeleteJourney(c *gin.Context) {
	journeyId := c.Param("journeyId")

	if err := j.journeyService.DeleteJourney(c.Request.Context(), currentUser(c), journeyId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Journey deleted successfully")
}

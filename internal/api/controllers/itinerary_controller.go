package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// PreviewItinerary godoc
// @Summary Plan a trip without saving it
// @Description Groups the destination's attractions into days and orders each day's route
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /itineraries/preview [post]
func (i *ItineraryController) PreviewItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := i.itineraryService.Preview(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Itinerary planned successfully")
}

// GenerateItinerary godoc
// @Summary Plan a trip and save it as a journey
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip"
// @Success 201 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Example {json} Request Body Example:
//
//	{
//	  "title": "Long weekend",
//	  "destination": "Hanoi",
//	  "start_date": "2026-03-01",
//	  "end_date": "2026-03-03",
//	  "preferences": ["Historical Sites", "Museums & Galleries"]
//	}
//
// @Router /itineraries [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := i.itineraryService.Generate(c.Request.Context(), currentUser(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, plan, "Itinerary saved successfully")
}

// ReorderDay godoc
// @Summary Set the visiting order of a day
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Param dayNumber path int true "Day number, starting at 1"
// @Param request body request_models.ReorderDayRequest true "Every POI id of the day in the new order"
// @Success 200 {object} response_models.DayPlanResponse
// @Security BearerAuth
// @Router /journeys/{journeyId}/days/{dayNumber}/order [put]
func (i *ItineraryController) ReorderDay(c *gin.Context) {
	dayNumber, ok := dayNumberParam(c)
	if !ok {
		return
	}

	var req request_models.ReorderDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	day, err := i.itineraryService.ReorderDay(c.Request.Context(), currentUser(c), c.Param("journeyId"), dayNumber, req.PoiIDs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, day, "Day reordered successfully")
}

// AddPoiToDay godoc
// @Summary Add a POI to a day
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Param dayNumber path int true "Day number, starting at 1"
// @Param request body request_models.AddPoiToDayRequest true "POI and optional position"
// @Success 200 {object} response_models.DayPlanResponse
// @Security BearerAuth
// @Router /journeys/{journeyId}/days/{dayNumber}/pois [post]
func (i *ItineraryController) AddPoiToDay(c *gin.Context) {
	dayNumber, ok := dayNumberParam(c)
	if !ok {
		return
	}

	var req request_models.AddPoiToDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	day, err := i.itineraryService.AddPoiToDay(c.Request.Context(), currentUser(c), c.Param("journeyId"), dayNumber, req.PoiID, req.Position)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, day, "POI added successfully")
}

// RemovePoiFromDay godoc
// @Summary Remove a POI from a day
// @Tags Itinerary
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Param dayNumber path int true "Day number, starting at 1"
// @Param poiId path string true "POI ID"
// @Success 200 {object} response_models.DayPlanResponse
// @Security BearerAuth
// @Router /journeys/{journeyId}/days/{dayNumber}/pois/{poiId} [delete]
func (i *ItineraryController) RemovePoiFromDay(c *gin.Context) {
	dayNumber, ok := dayNumberParam(c)
	if !ok {
		return
	}

	day, err := i.itineraryService.RemovePoiFromDay(c.Request.Context(), currentUser(c), c.Param("journeyId"), dayNumber, c.Param("poiId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, day, "POI removed successfully")
}

// ReoptimizeDay godoc
// @Summary Suggest a shorter route for a day
// @Description Returns the reordered day and the distance saved; apply=true stores the new order
// @Tags Itinerary
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Param dayNumber path int true "Day number, starting at 1"
// @Param apply query bool false "Store the new order" default(false)
// @Success 200 {object} response_models.ReoptimizeResponse
// @Security BearerAuth
// @Router /journeys/{journeyId}/days/{dayNumber}/reoptimize [post]
func (i *ItineraryController) ReoptimizeDay(c *gin.Context) {
	dayNumber, ok := dayNumberParam(c)
	if !ok {
		return
	}

	apply, err := strconv.ParseBool(c.DefaultQuery("apply", "false"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "apply must be true or false")
		return
	}

	res, err := i.itineraryService.ReoptimizeDay(c.Request.Context(), currentUser(c), c.Param("journeyId"), dayNumber, apply)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, res, "Day reoptimized successfully")
}

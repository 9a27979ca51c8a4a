package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type POIsController struct {
	poiService services.POIServiceInterface
}

func NewPOIsController(poiService services.POIServiceInterface) *POIsController {
	return &POIsController{
		poiService: poiService,
	}
}

// GetPoiById godoc
// @Summary Get a POI
// @Tags POI
// @Produce json
// @Param id path string true "POI ID"
// @Success 200 {object} response_models.POI
// @Failure 404 {object} utils.APIResponse
// @Router /pois/{id} [get]
func (p *POIsController) GetPoiById(c *gin.Context) {
	poiId := c.Param("id")
	if poiId == "" {
		utils.RespondError(c, http.StatusBadRequest, "POI ID is required")
		return
	}

	poi, err := p.poiService.GetPOIById(poiId, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, poi, "POI fetched successfully")
}

// GetPoisByDestination godoc
// @Summary List POIs of a destination
// @Tags POI
// @Produce json
// @Param destination query string true "Destination name"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {array} response_models.POI
// @Router /pois [get]
func (p *POIsController) GetPoisByDestination(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	page, pageSize, ok := pageParams(c, 20)
	if !ok {
		return
	}

	pois, err := p.poiService.GetPoisByDestination(destination, page, pageSize, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pois, "POIs fetched successfully")
}

// CreatePoi godoc
// @Summary Add a POI to the catalog
// @Tags POI
// @Accept json
// @Produce json
// @Param request body request_models.CreatePoiRequest true "POI"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /pois [post]
func (p *POIsController) CreatePoi(c *gin.Context) {
	var req request_models.CreatePoiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := p.poiService.CreatePoi(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, gin.H{"id": id.String()}, "POI created successfully")
}

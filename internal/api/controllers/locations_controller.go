package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type LocationsController struct {
	locationService services.LocationServiceInterface
}

func NewLocationsController(locationService services.LocationServiceInterface) *LocationsController {
	return &LocationsController{
		locationService: locationService,
	}
}

// NearbyLocations godoc
// @Summary Explore points of interest near a coordinate
// @Tags Location
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in meters" default(10000)
// @Param category query string false "Category filter"
// @Success 200 {array} response_models.Location
// @Router /locations/nearby [get]
func (lc *LocationsController) NearbyLocations(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
	if err1 != nil || err2 != nil {
		utils.RespondError(c, http.StatusBadRequest, "lat and lng query parameters are required")
		return
	}
	radius, err := strconv.ParseFloat(c.DefaultQuery("radius", "10000"), 64)
	if err != nil || radius <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid radius")
		return
	}

	locations, err := lc.locationService.NearbyLocations(c.Request.Context(), c.Query("category"), radius, lat, lng)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildLocations(locations), "Nearby locations fetched successfully")
}

// SearchLocations godoc
// @Summary Search points of interest by name or description
// @Tags Location
// @Produce json
// @Param q query string true "Search query"
// @Param lat query number false "Latitude to sort results by proximity"
// @Param lng query number false "Longitude to sort results by proximity"
// @Success 200 {array} response_models.Location
// @Router /locations/search [get]
func (lc *LocationsController) SearchLocations(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "q query parameter is required")
		return
	}
	lat, _ := strconv.ParseFloat(c.Query("lat"), 64)
	lng, _ := strconv.ParseFloat(c.Query("lng"), 64)

	locations, err := lc.locationService.SearchLocations(c.Request.Context(), query, lat, lng)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildLocations(locations), "Locations fetched successfully")
}

// GetLocationByID godoc
// @Summary Get a location by ID
// @Tags Location
// @Produce json
// @Param locationId path string true "Location ID"
// @Success 200 {object} response_models.Location
// @Router /locations/{locationId} [get]
func (lc *LocationsController) GetLocationByID(c *gin.Context) {
	location, err := lc.locationService.GetLocationByID(c.Request.Context(), c.Param("locationId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildLocation(location), "Location fetched successfully")
}

// ListLocations godoc
// @Summary List locations
// @Tags Location
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {array} response_models.Location
// @Router /locations [get]
func (lc *LocationsController) ListLocations(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	locations, err := lc.locationService.ListLocations(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildLocations(locations), "Locations fetched successfully")
}

// CreateLocation godoc
// @Summary Create a location (admin)
// @Tags Location
// @Accept json
// @Produce json
// @Param request body request_models.CreateLocationRequest true "Location fields"
// @Success 200 {object} response_models.Location
// @Security BearerAuth
// @Router /locations [post]
func (lc *LocationsController) CreateLocation(c *gin.Context) {
	var req request_models.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid location payload")
		return
	}

	location, err := lc.locationService.CreateLocation(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildLocation(location), "Location created successfully")
}

// UpdateLocation godoc
// @Summary Update a location (admin)
// @Tags Location
// @Accept json
// @Produce json
// @Param request body request_models.UpdateLocationRequest true "Location fields"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /locations [put]
func (lc *LocationsController) UpdateLocation(c *gin.Context) {
	var req request_models.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid location payload")
		return
	}

	if err := lc.locationService.UpdateLocation(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Location updated successfully")
}

// DeleteLocation godoc
// @Summary Delete a location (admin)
// @Tags Location
// @Param locationId path string true "Location ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /locations/{locationId} [delete]
func (lc *LocationsController) DeleteLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("locationId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid location ID")
		return
	}

	if err := lc.locationService.DeleteLocation(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Location deleted successfully")
}

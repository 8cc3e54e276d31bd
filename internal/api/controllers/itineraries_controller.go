package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type ItinerariesController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItinerariesController(itineraryService services.ItineraryServiceInterface) *ItinerariesController {
	return &ItinerariesController{
		itineraryService: itineraryService,
	}
}

// CreateItinerary godoc
// @Summary Create an itinerary
// @Description Create an itinerary, optionally seeded with destinations by location id
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.CreateItineraryRequest true "Itinerary fields"
// @Success 200 {object} response_models.ItineraryDetail
// @Security BearerAuth
// @Router /itineraries [post]
func (ic *ItinerariesController) CreateItinerary(c *gin.Context) {
	var req request_models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary payload")
		return
	}

	itinerary, err := ic.itineraryService.CreateItinerary(c.Request.Context(), c.GetString("account_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildItineraryDetail(itinerary), "Itinerary created successfully")
}

// ListItineraries godoc
// @Summary List itineraries
// @Description Fetch a paginated list of the authenticated account's itineraries
// @Tags Itinerary
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {array} response_models.ItinerarySummary
// @Security BearerAuth
// @Router /itineraries [get]
func (ic *ItinerariesController) ListItineraries(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	itineraries, err := ic.itineraryService.ListItineraries(c.Request.Context(), c.GetString("account_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildItinerarySummaries(itineraries), "Itineraries fetched successfully")
}

// GetItinerary godoc
// @Summary Get itinerary details
// @Tags Itinerary
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} response_models.ItineraryDetail
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [get]
func (ic *ItinerariesController) GetItinerary(c *gin.Context) {
	itineraryID := c.Param("itineraryId")
	if itineraryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	itinerary, err := ic.itineraryService.GetItinerary(c.Request.Context(), c.GetString("account_id"), itineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildItineraryDetail(itinerary), "Itinerary fetched successfully")
}

// UpdateItinerary godoc
// @Summary Update itinerary fields
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Param request body request_models.UpdateItineraryRequest true "Fields to update"
// @Success 200 {object} response_models.ItineraryDetail
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [put]
func (ic *ItinerariesController) UpdateItinerary(c *gin.Context) {
	itineraryID := c.Param("itineraryId")
	var req request_models.UpdateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid update payload")
		return
	}

	itinerary, err := ic.itineraryService.UpdateItinerary(c.Request.Context(), c.GetString("account_id"), itineraryID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildItineraryDetail(itinerary), "Itinerary updated successfully")
}

// DeleteItinerary godoc
// @Summary Delete an itinerary
// @Tags Itinerary
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [delete]
func (ic *ItinerariesController) DeleteItinerary(c *gin.Context) {
	err := ic.itineraryService.DeleteItinerary(c.Request.Context(), c.GetString("account_id"), c.Param("itineraryId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}

// AddDestination godoc
// @Summary Append a destination to an itinerary
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Param request body request_models.AddDestinationRequest true "Location ID"
// @Success 200 {object} response_models.ItineraryDetail
// @Security BearerAuth
// @Router /itineraries/{itineraryId}/destinations [post]
func (ic *ItinerariesController) AddDestination(c *gin.Context) {
	var req request_models.AddDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "LocationID is required")
		return
	}

	itinerary, err := ic.itineraryService.AddDestination(c.Request.Context(), c.GetString("account_id"), c.Param("itineraryId"), req.LocationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildItineraryDetail(itinerary), "Destination added successfully")
}

// RemoveDestination godoc
// @Summary Remove the destination at a position
// @Description Out-of-range positions are ignored and return the itinerary unchanged
// @Tags Itinerary
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Param index path int true "Destination position"
// @Success 200 {object} response_models.ItineraryDetail
// @Security BearerAuth
// @Router /itineraries/{itineraryId}/destinations/{index} [delete]
func (ic *ItinerariesController) RemoveDestination(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid destination index")
		return
	}

	itinerary, err := ic.itineraryService.RemoveDestinationAt(c.Request.Context(), c.GetString("account_id"), c.Param("itineraryId"), index)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildItineraryDetail(itinerary), "Destination removed successfully")
}

// ReorderDestinations godoc
// @Summary Move destinations to a new position
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Param request body request_models.ReorderDestinationsRequest true "Source indices and target position"
// @Success 200 {object} response_models.ItineraryDetail
// @Security BearerAuth
// @Router /itineraries/{itineraryId}/reorder [post]
func (ic *ItinerariesController) ReorderDestinations(c *gin.Context) {
	var req request_models.ReorderDestinationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "FromIndices is required")
		return
	}

	itinerary, err := ic.itineraryService.ReorderDestinations(c.Request.Context(), c.GetString("account_id"), c.Param("itineraryId"), req.FromIndices, req.ToIndex)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildItineraryDetail(itinerary), "Destinations reordered successfully")
}

// OptimizeItinerary godoc
// @Summary Reorder destinations for shorter travel distance
// @Description Greedy nearest-neighbor reordering anchored at the first destination
// @Tags Itinerary
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} response_models.ItineraryDetail
// @Security BearerAuth
// @Router /itineraries/{itineraryId}/optimize [post]
func (ic *ItinerariesController) OptimizeItinerary(c *gin.Context) {
	itinerary, err := ic.itineraryService.OptimizeItinerary(c.Request.Context(), c.GetString("account_id"), c.Param("itineraryId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildItineraryDetail(itinerary), "Itinerary optimized successfully")
}

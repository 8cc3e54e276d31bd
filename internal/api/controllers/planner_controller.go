package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
	accountService services.AccountServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface, accountService services.AccountServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
		accountService: accountService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a smart itinerary
// @Description Build a multi-day itinerary from the account's preferences (or inline overrides) and nearby points of interest around the origin coordinate
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip window, origin and optional preferences"
// @Success 200 {object} response_models.ItineraryDetail
// @Security BearerAuth
// @Router /itineraries/generate [post]
func (pc *PlannerController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid generation payload")
		return
	}

	accountID := c.GetString("account_id")
	owner, err := uuid.Parse(accountID)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid account")
		return
	}

	prefs, err := pc.resolvePreferences(c, accountID, req.Preferences)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	itinerary, err := pc.plannerService.GenerateSmartItinerary(c.Request.Context(), services.GenerateItineraryParams{
		AccountID:   owner,
		Title:       req.Title,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		OriginLat:   req.OriginLat,
		OriginLng:   req.OriginLng,
		Preferences: prefs,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildItineraryDetail(itinerary), "Itinerary generated successfully")
}

func (pc *PlannerController) resolvePreferences(c *gin.Context, accountID string, inline *request_models.PreferencesPayload) (db_models.TravelPreferences, error) {
	if inline == nil {
		return pc.accountService.GetPreferences(c.Request.Context(), accountID)
	}

	interests := make([]db_models.InterestCategory, 0, len(inline.Interests))
	for _, i := range inline.Interests {
		interests = append(interests, db_models.InterestCategory(i))
	}
	return db_models.TravelPreferences{
		Style:           db_models.TravelStyle(inline.TravelStyle),
		Interests:       interests,
		EcoFriendlyMode: inline.EcoFriendlyMode,
		Transportation:  db_models.Transportation(inline.Transportation),
	}, nil
}

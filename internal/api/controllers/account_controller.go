package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// SignUp godoc
// @Summary Register a new account
// @Tags Account
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Display name, email, password"
// @Success 200 {object} utils.APIResponse
// @Router /accounts/signup [post]
func (ac *AccountController) SignUp(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid signup payload")
		return
	}

	if err := ac.accountService.CreateAccount(req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Account created successfully")
}

// Login godoc
// @Summary Log in and receive a bearer token
// @Tags Account
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Email and password"
// @Success 200 {object} response_models.LoginResponse
// @Router /accounts/login [post]
func (ac *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid login payload")
		return
	}

	token, err := ac.accountService.Login(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.LoginResponse{Token: token}, "Logged in successfully")
}

// GetPreferences godoc
// @Summary Get the account's travel preferences
// @Tags Account
// @Produce json
// @Success 200 {object} response_models.Preferences
// @Security BearerAuth
// @Router /accounts/preferences [get]
func (ac *AccountController) GetPreferences(c *gin.Context) {
	prefs, err := ac.accountService.GetPreferences(c.Request.Context(), c.GetString("account_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildPreferences(prefs), "Preferences fetched successfully")
}

// UpdatePreferences godoc
// @Summary Update the account's travel preferences
// @Tags Account
// @Accept json
// @Produce json
// @Param request body request_models.UpdatePreferencesRequest true "Preference fields"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/preferences [put]
func (ac *AccountController) UpdatePreferences(c *gin.Context) {
	var req request_models.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid preferences payload")
		return
	}

	if err := ac.accountService.UpdatePreferences(c.Request.Context(), c.GetString("account_id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Preferences updated successfully")
}

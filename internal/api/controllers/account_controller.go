package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibecheck/internal/models/request_models"
	"vibecheck/internal/models/response_models"
	"vibecheck/internal/services"
	"vibecheck/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{accountService: accountService}
}

// SignUp godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Signup payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /auth/signup [post]
func (a *AccountController) SignUp(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := a.accountService.SignUp(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, user, "Account created successfully")
}

// Login godoc
// @Summary Exchange credentials for an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, "Login successful")
}

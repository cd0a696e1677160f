package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vibecheck/internal/models/request_models"
	"vibecheck/internal/services"
	"vibecheck/pkg/utils"
)

// BurnoutScoreController is superuser-only; the route group applies
// middleware.SuperuserMiddleware.
type BurnoutScoreController struct {
	burnoutService services.BurnoutScoreServiceInterface
}

func NewBurnoutScoreController(burnoutService services.BurnoutScoreServiceInterface) *BurnoutScoreController {
	return &BurnoutScoreController{burnoutService: burnoutService}
}

// Create godoc
// @Summary Record a burnout score for a period
// @Tags BurnoutScores
// @Accept json
// @Produce json
// @Param request body request_models.CreateBurnoutScoreRequest true "Burnout score payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /burnout-scores [post]
// @Security BearerAuth
func (b *BurnoutScoreController) Create(c *gin.Context) {
	var req request_models.CreateBurnoutScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	score, err := b.burnoutService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, score, "Burnout score created successfully")
}

// List godoc
// @Summary List burnout scores, optionally filtered by user
// @Tags BurnoutScores
// @Param userId query int false "Filter by user ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /burnout-scores [get]
// @Security BearerAuth
func (b *BurnoutScoreController) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size")
		return
	}

	if userIDStr := c.Query("userId"); userIDStr != "" {
		userID, err := strconv.ParseUint(userIDStr, 10, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
			return
		}
		scores, err := b.burnoutService.ListByUser(c.Request.Context(), uint(userID), page, pageSize)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, scores, "Burnout scores fetched successfully")
		return
	}

	scores, err := b.burnoutService.ListAll(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, scores, "Burnout scores fetched successfully")
}

// Delete godoc
// @Summary Soft-delete a burnout score
// @Tags BurnoutScores
// @Param id path int true "Burnout score ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /burnout-scores/{id} [delete]
// @Security BearerAuth
func (b *BurnoutScoreController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid burnout score ID")
		return
	}

	if err := b.burnoutService.Delete(c.Request.Context(), uint(id)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Burnout score deleted successfully")
}

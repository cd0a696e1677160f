package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vibecheck/internal/models/request_models"
	"vibecheck/internal/services"
	"vibecheck/pkg/utils"
)

type VibeLogController struct {
	vibeLogService services.VibeLogServiceInterface
}

func NewVibeLogController(vibeLogService services.VibeLogServiceInterface) *VibeLogController {
	return &VibeLogController{vibeLogService: vibeLogService}
}

// Create godoc
// @Summary Create a vibe log
// @Description Stores the entry and schedules background sentiment enrichment
// @Tags VibeLogs
// @Accept json
// @Produce json
// @Param request body request_models.CreateVibeLogRequest true "Vibe log payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /vibe-logs [post]
// @Security BearerAuth
func (v *VibeLogController) Create(c *gin.Context) {
	var req request_models.CreateVibeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	vibeLog, err := v.vibeLogService.Create(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, vibeLog, "Vibe log created successfully")
}

// List godoc
// @Summary List the authenticated user's vibe logs
// @Tags VibeLogs
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /vibe-logs [get]
// @Security BearerAuth
func (v *VibeLogController) List(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

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

	vibeLogs, err := v.vibeLogService.ListByUser(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vibeLogs, "Vibe logs fetched successfully")
}

// GetByID godoc
// @Summary Get a vibe log by ID
// @Tags VibeLogs
// @Param id path int true "Vibe log ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /vibe-logs/{id} [get]
// @Security BearerAuth
func (v *VibeLogController) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid vibe log ID")
		return
	}

	vibeLog, err := v.vibeLogService.GetByID(c.Request.Context(), uint(id), c.GetUint("user_id"), c.GetBool("is_superuser"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vibeLog, "Vibe log fetched successfully")
}

// Update godoc
// @Summary Update a vibe log
// @Tags VibeLogs
// @Accept json
// @Produce json
// @Param id path int true "Vibe log ID"
// @Param request body request_models.UpdateVibeLogRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /vibe-logs/{id} [put]
// @Security BearerAuth
func (v *VibeLogController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid vibe log ID")
		return
	}

	var req request_models.UpdateVibeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	vibeLog, err := v.vibeLogService.Update(c.Request.Context(), uint(id), c.GetUint("user_id"), c.GetBool("is_superuser"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vibeLog, "Vibe log updated successfully")
}

// Delete godoc
// @Summary Soft-delete a vibe log
// @Tags VibeLogs
// @Param id path int true "Vibe log ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /vibe-logs/{id} [delete]
// @Security BearerAuth
func (v *VibeLogController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid vibe log ID")
		return
	}

	if err := v.vibeLogService.Delete(c.Request.Context(), uint(id), c.GetUint("user_id"), c.GetBool("is_superuser")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Vibe log deleted successfully")
}

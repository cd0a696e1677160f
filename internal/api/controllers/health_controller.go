package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vibecheck/internal/models/response_models"
	"vibecheck/internal/services"
	"vibecheck/pkg/utils"
)

type HealthController struct {
	db               *gorm.DB
	sentimentService services.SentimentRatingServiceInterface
}

func NewHealthController(db *gorm.DB, sentimentService services.SentimentRatingServiceInterface) *HealthController {
	return &HealthController{db: db, sentimentService: sentimentService}
}

// Health godoc
// @Summary Report database and AI gateway health
// @Tags Health
// @Success 200 {object} utils.APIResponse
// @Router /health [get]
func (h *HealthController) Health(c *gin.Context) {
	dbStatus := "ok"
	sqlDB, err := h.db.DB()
	if err != nil {
		dbStatus = "error"
	} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		dbStatus = "error"
	}

	utils.RespondSuccess(c, response_models.HealthResponse{
		Database:  dbStatus,
		AIService: h.sentimentService.IsServiceAvailable(),
	}, "Health fetched")
}

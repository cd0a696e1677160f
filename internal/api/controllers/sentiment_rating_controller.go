package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vibecheck/internal/models/db_models"
	"vibecheck/internal/models/request_models"
	"vibecheck/internal/services"
	"vibecheck/pkg/utils"
)

type SentimentRatingController struct {
	sentimentService services.SentimentRatingServiceInterface
}

func NewSentimentRatingController(sentimentService services.SentimentRatingServiceInterface) *SentimentRatingController {
	return &SentimentRatingController{sentimentService: sentimentService}
}

func snapshotFromRequest(req request_models.AnalyzeSentimentRequest) request_models.MoodSnapshot {
	return request_models.MoodSnapshot{
		UserID:       req.UserID,
		Summary:      req.Summary,
		Mood:         db_models.Mood(req.Mood),
		EnergyLevel:  req.EnergyLevel,
		Complexity:   db_models.Complexity(req.Complexity),
		Satisfaction: req.Satisfaction,
	}
}

// Analyze godoc
// @Summary Analyze a mood snapshot and store the rating
// @Description Run the sentiment pipeline and persist the resulting record
// @Tags SentimentRatings
// @Accept json
// @Produce json
// @Param request body request_models.AnalyzeSentimentRequest true "Mood snapshot"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /sentiment-ratings/analyze [post]
func (s *SentimentRatingController) Analyze(c *gin.Context) {
	var req request_models.AnalyzeSentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	record, err := s.sentimentService.AnalyzeAndCreate(c.Request.Context(), snapshotFromRequest(req), req.Model)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, record, "Sentiment rating created successfully")
}

// AnalyzeOnly godoc
// @Summary Analyze a mood snapshot without storing it
// @Tags SentimentRatings
// @Accept json
// @Produce json
// @Param request body request_models.AnalyzeSentimentRequest true "Mood snapshot"
// @Success 200 {object} utils.APIResponse
// @Router /sentiment-ratings/analyze-only [post]
func (s *SentimentRatingController) AnalyzeOnly(c *gin.Context) {
	var req request_models.AnalyzeSentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	payload, err := s.sentimentService.Analyze(c.Request.Context(), snapshotFromRequest(req), req.Model)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payload, "Sentiment analyzed successfully")
}

// BatchAnalyze godoc
// @Summary Analyze a batch of mood snapshots
// @Description Each item is processed independently; failures do not stop the batch
// @Tags SentimentRatings
// @Accept json
// @Produce json
// @Param request body request_models.BatchAnalyzeSentimentRequest true "Batch payload"
// @Success 200 {object} utils.APIResponse
// @Router /sentiment-ratings/batch [post]
func (s *SentimentRatingController) BatchAnalyze(c *gin.Context) {
	var req request_models.BatchAnalyzeSentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	snapshots := make([]request_models.MoodSnapshot, 0, len(req.Items))
	for _, item := range req.Items {
		snapshots = append(snapshots, snapshotFromRequest(item))
	}

	results := s.sentimentService.BatchAnalyzeAndCreate(c.Request.Context(), snapshots, req.Model)
	utils.RespondSuccess(c, results, "Batch processed")
}

// ListByUser godoc
// @Summary List sentiment ratings for a user
// @Tags SentimentRatings
// @Param userId path int true "User ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /sentiment-ratings/user/{userId} [get]
func (s *SentimentRatingController) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
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

	ratings, err := s.sentimentService.ListByUser(c.Request.Context(), uint(userID), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ratings, "Sentiment ratings fetched successfully")
}

// GetByID godoc
// @Summary Get a sentiment rating by ID
// @Description Explicit lookups also return soft-deleted records
// @Tags SentimentRatings
// @Param id path int true "Rating ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /sentiment-ratings/{id} [get]
func (s *SentimentRatingController) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid rating ID")
		return
	}

	rating, err := s.sentimentService.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rating, "Sentiment rating fetched successfully")
}

// StatsByUser godoc
// @Summary Aggregate sentiment statistics for a user
// @Tags SentimentRatings
// @Param userId path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Router /sentiment-ratings/user/{userId}/stats [get]
func (s *SentimentRatingController) StatsByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	stats, err := s.sentimentService.StatsByUser(c.Request.Context(), uint(userID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Sentiment statistics fetched successfully")
}

// Delete godoc
// @Summary Soft-delete a sentiment rating
// @Tags SentimentRatings
// @Param id path int true "Rating ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /sentiment-ratings/{id} [delete]
func (s *SentimentRatingController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid rating ID")
		return
	}

	if err := s.sentimentService.Delete(c.Request.Context(), uint(id)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Sentiment rating deleted successfully")
}

// Availability godoc
// @Summary Report whether the AI gateway is configured
// @Tags SentimentRatings
// @Success 200 {object} utils.APIResponse
// @Router /sentiment-ratings/availability [get]
func (s *SentimentRatingController) Availability(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"available": s.sentimentService.IsServiceAvailable()}, "Availability fetched")
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/errors"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/middleware"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/questionnaire/models"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/questionnaire/services"
)

// InitializeQuestions seeds the question bank (idempotent).
// POST /api/v1/questionnaire/initialize
func InitializeQuestions(c *gin.Context) {
	message, err := services.InitializeQuestions()
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// GetNextQuestion returns the next unanswered question for the caller.
// Anonymous callers get null.
// GET /api/v1/questionnaire/next
func GetNextQuestion(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}

	next, err := services.GetNextQuestion(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, next)
}

// SubmitAnswer records an answer and returns the points and streak earned.
// POST /api/v1/questionnaire/answers
func SubmitAnswer(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
		return
	}

	var req models.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}

	response, err := services.SubmitAnswer(userID, &req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetProgress returns answered counts, completion state, personality and
// gamification counters. Anonymous callers get null.
// GET /api/v1/questionnaire/progress
func GetProgress(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}

	progress, err := services.GetProgress(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// GetPersonality returns the caller's aggregated personality profile.
// Null until at least one answer exists.
// GET /api/v1/questionnaire/personality
func GetPersonality(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}

	personality, err := services.GetPersonality(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, personality)
}

// GetGamification returns the caller's points, streaks and badges.
// GET /api/v1/questionnaire/gamification
func GetGamification(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}

	gamification, err := services.GetGamification(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gamification)
}

// HasCompleted reports whether the caller answered every question.
// GET /api/v1/questionnaire/completed
func HasCompleted(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"completed": false})
		return
	}

	completed, err := services.HasCompleted(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"completed": completed})
}

// RegisterRoutes wires the questionnaire endpoints onto a router group.
func RegisterRoutes(rg *gin.RouterGroup) {
	q := rg.Group("/questionnaire")
	{
		q.POST("/initialize", InitializeQuestions)
		q.GET("/next", middleware.OptionalAuth(), GetNextQuestion)
		q.POST("/answers", middleware.AuthRequired(), SubmitAnswer)
		q.GET("/progress", middleware.OptionalAuth(), GetProgress)
		q.GET("/personality", middleware.OptionalAuth(), GetPersonality)
		q.GET("/gamification", middleware.OptionalAuth(), GetGamification)
		q.GET("/completed", middleware.OptionalAuth(), HasCompleted)
	}
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/errors"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/middleware"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/dashboard/models"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/dashboard/services"
)

// SaveProfile creates or replaces the caller's onboarding profile.
// POST /api/v1/dashboard/profile
func SaveProfile(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req models.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}

	profile, err := services.SaveProfile(userID, &req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetProfile returns the caller's profile, null before onboarding.
// GET /api/v1/dashboard/profile
func GetProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}

	profile, err := services.GetProfile(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetSurvivalAnalysis returns the caller's runway analysis.
// GET /api/v1/dashboard/survival
func GetSurvivalAnalysis(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}

	analysis, err := services.GetSurvivalAnalysis(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// GetStats returns aggregated dashboard totals, null before onboarding.
// GET /api/v1/dashboard/stats
func GetStats(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}

	stats, err := services.GetDashboardStats(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AddTransaction records an income or expense entry.
// POST /api/v1/dashboard/transactions
func AddTransaction(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req models.AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}

	txn, err := services.AddTransaction(userID, &req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, txn)
}

// GetRecentTransactions lists the caller's ten newest transactions.
// GET /api/v1/dashboard/transactions
func GetRecentTransactions(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusOK, []models.Transaction{})
		return
	}

	transactions, err := services.GetRecentTransactions(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// GetSpendingBreakdown lists expense totals per category.
// GET /api/v1/dashboard/spending
func GetSpendingBreakdown(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusOK, []models.SpendingCategory{})
		return
	}

	breakdown, err := services.GetSpendingBreakdown(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// CreateGoal creates a savings goal.
// POST /api/v1/dashboard/goals
func CreateGoal(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req models.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}

	goal, err := services.CreateGoal(userID, &req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// GetGoals lists the caller's goals.
// GET /api/v1/dashboard/goals
func GetGoals(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusOK, []models.Goal{})
		return
	}

	goals, err := services.GetGoals(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

// UpdateGoalSavings adds money toward a goal.
// PATCH /api/v1/dashboard/goals/:id/savings
func UpdateGoalSavings(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	goalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid goal id"))
		return
	}

	var req models.UpdateGoalSavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}

	goal, err := services.UpdateGoalSavings(userID, uint(goalID), req.Amount)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// GetInsights lists the caller's five newest insights.
// GET /api/v1/dashboard/insights
func GetInsights(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusOK, []models.Insight{})
		return
	}

	insights, err := services.GetInsights(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, insights)
}

// CreateBudget creates a spending limit for the current month.
// POST /api/v1/dashboard/budgets
func CreateBudget(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req models.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}

	budget, err := services.CreateBudget(userID, &req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, budget)
}

// GetBudgets lists the caller's budgets for the current month.
// GET /api/v1/dashboard/budgets
func GetBudgets(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusOK, []models.Budget{})
		return
	}

	budgets, err := services.GetBudgets(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, budgets)
}

// InitializeSampleData seeds demo data for the caller's account.
// POST /api/v1/dashboard/sample-data
func InitializeSampleData(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	message, err := services.InitializeSampleData(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// RegisterRoutes wires the dashboard endpoints onto a router group.
func RegisterRoutes(rg *gin.RouterGroup) {
	d := rg.Group("/dashboard")
	{
		d.POST("/profile", middleware.AuthRequired(), SaveProfile)
		d.GET("/profile", middleware.OptionalAuth(), GetProfile)
		d.GET("/survival", middleware.OptionalAuth(), GetSurvivalAnalysis)
		d.GET("/stats", middleware.OptionalAuth(), GetStats)
		d.POST("/transactions", middleware.AuthRequired(), AddTransaction)
		d.GET("/transactions", middleware.OptionalAuth(), GetRecentTransactions)
		d.GET("/spending", middleware.OptionalAuth(), GetSpendingBreakdown)
		d.POST("/goals", middleware.AuthRequired(), CreateGoal)
		d.GET("/goals", middleware.OptionalAuth(), GetGoals)
		d.PATCH("/goals/:id/savings", middleware.AuthRequired(), UpdateGoalSavings)
		d.GET("/insights", middleware.OptionalAuth(), GetInsights)
		d.POST("/budgets", middleware.AuthRequired(), CreateBudget)
		d.GET("/budgets", middleware.OptionalAuth(), GetBudgets)
		d.POST("/sample-data", middleware.AuthRequired(), InitializeSampleData)
	}
}

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/database"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.UserProfile{},
		&models.Transaction{},
		&models.Goal{},
		&models.Insight{},
		&models.Budget{},
		&models.SurvivalAnalysis{},
	))
	database.DB = db

	router := gin.New()
	api := router.Group("/api/v1")
	RegisterRoutes(api)
	return router
}

func doRequest(router *gin.Engine, method, path string, userID uint, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %d", userID))
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProfileLifecycle(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("anonymous profile is null", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/dashboard/profile", 0, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null", w.Body.String())
	})

	t.Run("profile mutation requires auth", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/dashboard/profile", 0,
			models.CreateProfileRequest{Name: "Asha", Persona: "student", MonthlyIncome: 20000})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("create computes score and survival analysis", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/dashboard/profile", 1,
			models.CreateProfileRequest{
				Name:            "Asha",
				Persona:         "professional",
				MonthlyIncome:   50000,
				MonthlyExpenses: 25000,
				Savings:         100000,
			})
		require.Equal(t, http.StatusOK, w.Code)

		var profile models.UserProfile
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
		assert.Equal(t, 75, profile.FinancialScore) // saves half the income
		assert.Equal(t, 25, profile.Age)            // default when omitted
		assert.True(t, profile.OnboardingCompleted)

		w = doRequest(router, http.MethodGet, "/api/v1/dashboard/survival", 1, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var analysis models.SurvivalAnalysis
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analysis))
		assert.Equal(t, 4.0, analysis.SurvivalMonths) // 100000 / 25000
		assert.Equal(t, 67, analysis.SurvivalScore)
		assert.Equal(t, models.RiskMedium, analysis.RiskLevel)
	})

	t.Run("update replaces the existing row", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/dashboard/profile", 1,
			models.CreateProfileRequest{
				Name:            "Asha",
				Persona:         "professional",
				MonthlyIncome:   50000,
				MonthlyExpenses: 10000,
				Savings:         120000,
				Age:             31,
			})
		require.Equal(t, http.StatusOK, w.Code)

		var count int64
		require.NoError(t, database.DB.Model(&models.UserProfile{}).Where("user_id = ?", 1).Count(&count).Error)
		assert.Equal(t, int64(1), count)

		w = doRequest(router, http.MethodGet, "/api/v1/dashboard/survival", 1, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var analysis models.SurvivalAnalysis
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analysis))
		assert.Equal(t, 12.0, analysis.SurvivalMonths)
		assert.Equal(t, 100, analysis.SurvivalScore)
		assert.Equal(t, models.RiskLow, analysis.RiskLevel)
	})

	t.Run("rejects an unknown persona", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/dashboard/profile", 1,
			models.CreateProfileRequest{Name: "X", Persona: "retiree", MonthlyIncome: 1000})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTransactionsAndStats(t *testing.T) {
	router := setupTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/dashboard/profile", 2,
		models.CreateProfileRequest{
			Name:            "Ravi",
			Persona:         "student",
			MonthlyIncome:   30000,
			MonthlyExpenses: 30000,
			Savings:         5000,
		})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/dashboard/sample-data", 2, nil)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("stats aggregate transactions and goals", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/dashboard/stats", 2, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var stats models.DashboardStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.Equal(t, 50000.0, stats.TotalIncome)
		assert.Equal(t, 25000.0, stats.TotalExpenses)
		assert.Equal(t, 25000.0, stats.NetSavings)
		assert.Equal(t, 235000.0, stats.TotalSaved)
		assert.Equal(t, 480000.0, stats.TotalGoalTarget)
		assert.Equal(t, 49, stats.GoalsProgress)
		assert.Equal(t, 50, stats.FinancialScore) // income equals expenses
	})

	t.Run("spending breakdown sums per category", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/dashboard/spending", 2, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var breakdown []models.SpendingCategory
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &breakdown))
		require.Len(t, breakdown, 4)
		assert.Equal(t, "Rent", breakdown[0].Category)
		assert.Equal(t, 15000.0, breakdown[0].Amount)
		assert.Equal(t, 60, breakdown[0].Percentage)
	})

	t.Run("recent transactions are newest first", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/v1/dashboard/transactions", 2,
			models.AddTransactionRequest{Amount: 1200, Category: "Food", Type: "expense", Description: "Lunch out"})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doRequest(router, http.MethodGet, "/api/v1/dashboard/transactions", 2, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var transactions []models.Transaction
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &transactions))
		require.Len(t, transactions, 6)
		assert.Equal(t, "Lunch out", transactions[0].Description)
	})

	t.Run("anonymous stats are null", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/dashboard/stats", 0, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null", w.Body.String())
	})
}

func TestGoals(t *testing.T) {
	router := setupTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/dashboard/goals", 3,
		models.CreateGoalRequest{Name: "Bike", TargetAmount: 90000, TargetDate: "2026-12-31", Icon: "🏍️"})
	require.Equal(t, http.StatusCreated, w.Code)

	var goal models.Goal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &goal))
	assert.Equal(t, 0.0, goal.SavedAmount)

	t.Run("savings accumulate", func(t *testing.T) {
		path := fmt.Sprintf("/api/v1/dashboard/goals/%d/savings", goal.ID)

		w := doRequest(router, http.MethodPatch, path, 3, models.UpdateGoalSavingsRequest{Amount: 10000})
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(router, http.MethodPatch, path, 3, models.UpdateGoalSavingsRequest{Amount: 5000})
		require.Equal(t, http.StatusOK, w.Code)

		var updated models.Goal
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, 15000.0, updated.SavedAmount)
	})

	t.Run("other users cannot fund the goal", func(t *testing.T) {
		path := fmt.Sprintf("/api/v1/dashboard/goals/%d/savings", goal.ID)
		w := doRequest(router, http.MethodPatch, path, 4, models.UpdateGoalSavingsRequest{Amount: 1})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBudgets(t *testing.T) {
	router := setupTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/dashboard/budgets", 5,
		models.CreateBudgetRequest{Category: "Food", Limit: 8000})
	require.Equal(t, http.StatusCreated, w.Code)

	var budget models.Budget
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &budget))
	assert.Equal(t, 0.0, budget.Spent)
	assert.Regexp(t, `^\d{4}-\d{2}$`, budget.Month)

	w = doRequest(router, http.MethodGet, "/api/v1/dashboard/budgets", 5, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var budgets []models.Budget
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &budgets))
	require.Len(t, budgets, 1)
	assert.Equal(t, 8000.0, budgets[0].LimitValue)
}

func TestInsights(t *testing.T) {
	router := setupTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/dashboard/sample-data", 6, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/dashboard/insights", 6, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var insights []models.Insight
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &insights))
	require.Len(t, insights, 3)
	// Newest first
	assert.Equal(t, models.InsightTip, insights[0].Type)

	t.Run("anonymous insights are empty", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/dashboard/insights", 0, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})
}

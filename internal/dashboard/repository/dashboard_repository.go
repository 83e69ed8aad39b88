package repository

import (
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/database"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/errors"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/dashboard/models"
	"gorm.io/gorm"
)

// GetProfile retrieves a user's profile, nil when absent
func GetProfile(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	result := database.DB.Where("user_id = ?", userID).First(&profile)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Internal("failed to fetch profile", result.Error.Error())
	}
	return &profile, nil
}

// SaveProfile creates or updates a user's profile
func SaveProfile(profile *models.UserProfile) error {
	existing, err := GetProfile(profile.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	}

	if result := database.DB.Save(profile); result.Error != nil {
		return errors.Internal("failed to save profile", result.Error.Error())
	}
	return nil
}

// CreateTransaction inserts a transaction row
func CreateTransaction(txn *models.Transaction) error {
	if result := database.DB.Create(txn); result.Error != nil {
		return errors.Internal("failed to create transaction", result.Error.Error())
	}
	return nil
}

// GetTransactions retrieves all of a user's transactions
func GetTransactions(userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	result := database.DB.Where("user_id = ?", userID).Find(&transactions)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch transactions", result.Error.Error())
	}
	return transactions, nil
}

// GetRecentTransactions retrieves the newest transactions for a user
func GetRecentTransactions(userID uint, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	result := database.DB.
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&transactions)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch transactions", result.Error.Error())
	}
	return transactions, nil
}

// GetExpenses retrieves a user's expense transactions
func GetExpenses(userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	result := database.DB.
		Where("user_id = ? AND type = ?", userID, models.TransactionExpense).
		Find(&transactions)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch expenses", result.Error.Error())
	}
	return transactions, nil
}

// CreateGoal inserts a goal row
func CreateGoal(goal *models.Goal) error {
	if result := database.DB.Create(goal); result.Error != nil {
		return errors.Internal("failed to create goal", result.Error.Error())
	}
	return nil
}

// GetGoals retrieves all of a user's goals
func GetGoals(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	result := database.DB.Where("user_id = ?", userID).Find(&goals)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch goals", result.Error.Error())
	}
	return goals, nil
}

// GetGoal retrieves a single goal, nil when absent
func GetGoal(goalID uint) (*models.Goal, error) {
	var goal models.Goal
	result := database.DB.First(&goal, goalID)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Internal("failed to fetch goal", result.Error.Error())
	}
	return &goal, nil
}

// SaveGoal persists an updated goal row
func SaveGoal(goal *models.Goal) error {
	if result := database.DB.Save(goal); result.Error != nil {
		return errors.Internal("failed to update goal", result.Error.Error())
	}
	return nil
}

// CreateInsight inserts an insight row
func CreateInsight(insight *models.Insight) error {
	if result := database.DB.Create(insight); result.Error != nil {
		return errors.Internal("failed to create insight", result.Error.Error())
	}
	return nil
}

// GetLatestInsights retrieves the newest insights for a user
func GetLatestInsights(userID uint, limit int) ([]models.Insight, error) {
	var insights []models.Insight
	result := database.DB.
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&insights)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch insights", result.Error.Error())
	}
	return insights, nil
}

// CreateBudget inserts a budget row
func CreateBudget(budget *models.Budget) error {
	if result := database.DB.Create(budget); result.Error != nil {
		return errors.Internal("failed to create budget", result.Error.Error())
	}
	return nil
}

// GetBudgetsForMonth retrieves a user's budgets for one calendar month
func GetBudgetsForMonth(userID uint, month string) ([]models.Budget, error) {
	var budgets []models.Budget
	result := database.DB.
		Where("user_id = ? AND month = ?", userID, month).
		Find(&budgets)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch budgets", result.Error.Error())
	}
	return budgets, nil
}

// GetSurvivalAnalysis retrieves a user's survival analysis, nil when absent
func GetSurvivalAnalysis(userID uint) (*models.SurvivalAnalysis, error) {
	var analysis models.SurvivalAnalysis
	result := database.DB.Where("user_id = ?", userID).First(&analysis)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Internal("failed to fetch survival analysis", result.Error.Error())
	}
	return &analysis, nil
}

// SaveSurvivalAnalysis creates or updates the analysis row for a user
func SaveSurvivalAnalysis(analysis *models.SurvivalAnalysis) error {
	existing, err := GetSurvivalAnalysis(analysis.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		analysis.ID = existing.ID
	}

	if result := database.DB.Save(analysis); result.Error != nil {
		return errors.Internal("failed to save survival analysis", result.Error.Error())
	}
	return nil
}

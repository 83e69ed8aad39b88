package services

import (
	"math"
	"sort"
	"time"

	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/errors"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/logger"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/validation"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/dashboard/models"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/dashboard/repository"
	"go.uber.org/zap"
)

const (
	recentTransactionLimit = 10
	latestInsightLimit     = 5
)

// SaveProfile creates or updates the user's onboarding profile and
// refreshes their survival analysis. Analysis failures are logged but
// never fail the profile write.
func SaveProfile(userID uint, req *models.CreateProfileRequest) (*models.UserProfile, error) {
	if err := validation.ValidateFloatRange(req.MonthlyIncome, 0, 100_000_000); err != nil {
		return nil, errors.BadRequest("invalid monthly income")
	}
	if err := validation.ValidateFloatRange(req.MonthlyExpenses, 0, 100_000_000); err != nil {
		return nil, errors.BadRequest("invalid monthly expenses")
	}
	if err := validation.ValidateFloatRange(req.Savings, 0, 10_000_000_000); err != nil {
		return nil, errors.BadRequest("invalid savings")
	}
	if req.Age != 0 {
		if err := validation.ValidateIntRange(req.Age, 13, 120); err != nil {
			return nil, errors.BadRequest("invalid age")
		}
	}

	profile := &models.UserProfile{
		UserID:              userID,
		Name:                req.Name,
		Persona:             req.Persona,
		MonthlyIncome:       req.MonthlyIncome,
		MonthlyExpenses:     req.MonthlyExpenses,
		Savings:             req.Savings,
		ExistingDebts:       req.ExistingDebts,
		FinancialGoals:      req.FinancialGoals,
		Age:                 req.Age,
		OnboardingCompleted: true,
	}
	if profile.Age == 0 {
		profile.Age = 25
	}

	if req.FinancialScore != nil {
		profile.FinancialScore = int(math.Round(*req.FinancialScore))
	} else {
		profile.FinancialScore = financialScore(req.MonthlyIncome, req.MonthlyExpenses)
	}

	if err := repository.SaveProfile(profile); err != nil {
		return nil, err
	}

	if err := refreshSurvivalAnalysis(userID, req.MonthlyExpenses, req.Savings); err != nil {
		logger.Get().Error("survival analysis refresh failed",
			zap.Uint("user_id", userID), zap.Error(err))
	}

	return profile, nil
}

// financialScore is a savings-rate heuristic: spending everything scores
// 50, saving the full income scores 100, overspending drags below 50.
func financialScore(income, expenses float64) int {
	if income <= 0 {
		return 0
	}
	rate := (income - expenses) / income
	score := math.Round(50 + 50*rate)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(score)
}

// refreshSurvivalAnalysis recomputes how long savings cover the burn rate.
// Six months of runway scores 100.
func refreshSurvivalAnalysis(userID uint, monthlyExpenses, savings float64) error {
	months := 0.0
	if monthlyExpenses > 0 {
		months = savings / monthlyExpenses
	}

	score := int(math.Round(months * 16.67))
	if score > 100 {
		score = 100
	}

	risk := models.RiskHigh
	if months >= 6 {
		risk = models.RiskLow
	} else if months >= 3 {
		risk = models.RiskMedium
	}

	return repository.SaveSurvivalAnalysis(&models.SurvivalAnalysis{
		UserID:          userID,
		SurvivalMonths:  math.Round(months*10) / 10,
		SurvivalScore:   score,
		RiskLevel:       risk,
		MonthlyBurnRate: monthlyExpenses,
		LiquidSavings:   savings,
		LastCalculated:  time.Now(),
	})
}

// GetProfile returns the user's profile, nil before onboarding.
func GetProfile(userID uint) (*models.UserProfile, error) {
	return repository.GetProfile(userID)
}

// GetSurvivalAnalysis returns the latest analysis, nil before onboarding.
func GetSurvivalAnalysis(userID uint) (*models.SurvivalAnalysis, error) {
	return repository.GetSurvivalAnalysis(userID)
}

// GetDashboardStats aggregates profile, transaction and goal totals.
// Returns nil before onboarding.
func GetDashboardStats(userID uint) (*models.DashboardStats, error) {
	profile, err := repository.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	transactions, err := repository.GetTransactions(userID)
	if err != nil {
		return nil, err
	}

	goals, err := repository.GetGoals(userID)
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		MonthlyIncome:   profile.MonthlyIncome,
		MonthlyExpenses: profile.MonthlyExpenses,
		TotalSavings:    profile.Savings,
		FinancialScore:  profile.FinancialScore,
	}

	for _, t := range transactions {
		if t.Type == models.TransactionIncome {
			stats.TotalIncome += t.Amount
		} else {
			stats.TotalExpenses += t.Amount
		}
	}
	stats.NetSavings = stats.TotalIncome - stats.TotalExpenses

	for _, g := range goals {
		stats.TotalSaved += g.SavedAmount
		stats.TotalGoalTarget += g.TargetAmount
	}
	if stats.TotalGoalTarget > 0 {
		stats.GoalsProgress = int(math.Round(100 * stats.TotalSaved / stats.TotalGoalTarget))
	}

	return stats, nil
}

// AddTransaction records a transaction dated today.
func AddTransaction(userID uint, req *models.AddTransactionRequest) (*models.Transaction, error) {
	txn := &models.Transaction{
		UserID:      userID,
		Amount:      req.Amount,
		Category:    req.Category,
		Type:        req.Type,
		Description: req.Description,
		Date:        time.Now().Format("2006-01-02"),
	}
	if err := repository.CreateTransaction(txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// GetRecentTransactions returns the newest transactions, capped at ten.
func GetRecentTransactions(userID uint) ([]models.Transaction, error) {
	return repository.GetRecentTransactions(userID, recentTransactionLimit)
}

// GetSpendingBreakdown sums expenses per category with each category's
// share of the total.
func GetSpendingBreakdown(userID uint) ([]models.SpendingCategory, error) {
	expenses, err := repository.GetExpenses(userID)
	if err != nil {
		return nil, err
	}

	totals := map[string]float64{}
	grand := 0.0
	for _, t := range expenses {
		totals[t.Category] += t.Amount
		grand += t.Amount
	}

	breakdown := make([]models.SpendingCategory, 0, len(totals))
	for category, amount := range totals {
		entry := models.SpendingCategory{Category: category, Amount: amount}
		if grand > 0 {
			entry.Percentage = int(math.Round(100 * amount / grand))
		}
		breakdown = append(breakdown, entry)
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount != breakdown[j].Amount {
			return breakdown[i].Amount > breakdown[j].Amount
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown, nil
}

// CreateGoal creates a goal with zero saved so far.
func CreateGoal(userID uint, req *models.CreateGoalRequest) (*models.Goal, error) {
	goal := &models.Goal{
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		TargetDate:   req.TargetDate,
		Icon:         req.Icon,
	}
	if err := repository.CreateGoal(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// GetGoals returns all of the user's goals.
func GetGoals(userID uint) ([]models.Goal, error) {
	return repository.GetGoals(userID)
}

// UpdateGoalSavings adds to a goal's saved amount. Goals belong to their
// creator; anyone else gets not-found.
func UpdateGoalSavings(userID, goalID uint, amount float64) (*models.Goal, error) {
	goal, err := repository.GetGoal(goalID)
	if err != nil {
		return nil, err
	}
	if goal == nil || goal.UserID != userID {
		return nil, errors.NotFound("goal")
	}

	goal.SavedAmount += amount
	if err := repository.SaveGoal(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// GetInsights returns the newest insights, capped at five.
func GetInsights(userID uint) ([]models.Insight, error) {
	return repository.GetLatestInsights(userID, latestInsightLimit)
}

// CreateBudget creates a per-category limit for the current month.
func CreateBudget(userID uint, req *models.CreateBudgetRequest) (*models.Budget, error) {
	budget := &models.Budget{
		UserID:     userID,
		Category:   req.Category,
		LimitValue: req.Limit,
		Month:      time.Now().Format("2006-01"),
	}
	if err := repository.CreateBudget(budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// GetBudgets returns the user's budgets for the current month.
func GetBudgets(userID uint) ([]models.Budget, error) {
	return repository.GetBudgetsForMonth(userID, time.Now().Format("2006-01"))
}

// InitializeSampleData seeds demo transactions, goals and insights for a
// user. Used by the demo flow, safe to call once per account.
func InitializeSampleData(userID uint) (string, error) {
	sampleTransactions := []models.Transaction{
		{Amount: 50000, Category: "Salary", Type: models.TransactionIncome, Description: "Monthly Salary", Date: "2024-01-01"},
		{Amount: 15000, Category: "Rent", Type: models.TransactionExpense, Description: "Monthly Rent", Date: "2024-01-02"},
		{Amount: 5000, Category: "Food", Type: models.TransactionExpense, Description: "Groceries", Date: "2024-01-03"},
		{Amount: 3000, Category: "Transport", Type: models.TransactionExpense, Description: "Fuel & Transport", Date: "2024-01-04"},
		{Amount: 2000, Category: "Entertainment", Type: models.TransactionExpense, Description: "Movies & Dining", Date: "2024-01-05"},
	}
	sampleGoals := []models.Goal{
		{Name: "Emergency Fund", TargetAmount: 300000, SavedAmount: 150000, Icon: "🛡️", TargetDate: "2024-12-31"},
		{Name: "Vacation", TargetAmount: 100000, SavedAmount: 25000, Icon: "✈️", TargetDate: "2024-06-30"},
		{Name: "New Laptop", TargetAmount: 80000, SavedAmount: 60000, Icon: "💻", TargetDate: "2024-03-31"},
	}
	sampleInsights := []models.Insight{
		{Type: models.InsightSuccess, Message: "Great job! You saved 30% of your income this month.", Date: "2024-01-15"},
		{Type: models.InsightWarning, Message: "Your entertainment spending increased by 20% this month.", Date: "2024-01-14"},
		{Type: models.InsightTip, Message: "Consider setting up an SIP to automate your investments.", Date: "2024-01-13"},
	}

	for i := range sampleTransactions {
		sampleTransactions[i].UserID = userID
		if err := repository.CreateTransaction(&sampleTransactions[i]); err != nil {
			return "", err
		}
	}
	for i := range sampleGoals {
		sampleGoals[i].UserID = userID
		if err := repository.CreateGoal(&sampleGoals[i]); err != nil {
			return "", err
		}
	}
	for i := range sampleInsights {
		sampleInsights[i].UserID = userID
		if err := repository.CreateInsight(&sampleInsights[i]); err != nil {
			return "", err
		}
	}

	return "Sample data initialized successfully", nil
}

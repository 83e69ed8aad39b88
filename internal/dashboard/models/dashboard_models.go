package models

import "time"

// Personas
const (
	PersonaStudent      = "student"
	PersonaProfessional = "professional"
)

// Transaction types
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Insight types
const (
	InsightSuccess = "success"
	InsightWarning = "warning"
	InsightTip     = "tip"
)

// Risk levels for survival analysis
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// UserProfile is the onboarding profile, one row per user.
type UserProfile struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Name                string    `gorm:"not null" json:"name"`
	Persona             string    `gorm:"not null" json:"persona"`
	MonthlyIncome       float64   `gorm:"not null" json:"monthly_income"`
	MonthlyExpenses     float64   `gorm:"default:0" json:"monthly_expenses"`
	Savings             float64   `gorm:"default:0" json:"savings"`
	ExistingDebts       float64   `gorm:"default:0" json:"existing_debts"`
	FinancialGoals      string    `json:"financial_goals"`
	FinancialScore      int       `gorm:"default:0" json:"financial_score"`
	Age                 int       `gorm:"default:25" json:"age"`
	OnboardingCompleted bool      `gorm:"default:false" json:"onboarding_completed"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Transaction is a single income or expense entry.
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Category    string    `gorm:"not null" json:"category"`
	Type        string    `gorm:"not null" json:"type"`
	Description string    `json:"description"`
	Date        string    `gorm:"not null" json:"date"` // YYYY-MM-DD
	CreatedAt   time.Time `json:"created_at"`
}

// Goal is a savings goal with running progress.
type Goal struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	Name         string    `gorm:"not null" json:"name"`
	TargetAmount float64   `gorm:"not null" json:"target_amount"`
	SavedAmount  float64   `gorm:"default:0" json:"saved_amount"`
	Icon         string    `json:"icon"`
	TargetDate   string    `json:"target_date"` // YYYY-MM-DD
	CreatedAt    time.Time `json:"created_at"`
}

// Insight is a generated nudge shown on the dashboard.
type Insight struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Type      string    `gorm:"not null" json:"type"`
	Message   string    `gorm:"not null" json:"message"`
	Date      string    `gorm:"not null" json:"date"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
}

// Budget is a per-category spending limit scoped to a calendar month.
type Budget struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index:idx_budget_user_month;not null" json:"user_id"`
	Category   string    `gorm:"not null" json:"category"`
	LimitValue float64   `gorm:"column:limit_amount;not null" json:"limit"`
	Spent      float64   `gorm:"default:0" json:"spent"`
	Month      string    `gorm:"index:idx_budget_user_month;not null" json:"month"` // YYYY-MM
	CreatedAt  time.Time `json:"created_at"`
}

// SurvivalAnalysis estimates how long savings cover expenses, one row per
// user, refreshed on every profile change.
type SurvivalAnalysis struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	SurvivalMonths  float64   `json:"survival_months"`
	SurvivalScore   int       `json:"survival_score"`
	RiskLevel       string    `json:"risk_level"`
	MonthlyBurnRate float64   `json:"monthly_burn_rate"`
	LiquidSavings   float64   `json:"liquid_savings"`
	LastCalculated  time.Time `json:"last_calculated"`
}

// ========== REQUEST/RESPONSE TYPES ==========

type CreateProfileRequest struct {
	Name            string   `json:"name" binding:"required"`
	Persona         string   `json:"persona" binding:"required,oneof=student professional"`
	MonthlyIncome   float64  `json:"monthly_income" binding:"required,gt=0"`
	MonthlyExpenses float64  `json:"monthly_expenses" binding:"gte=0"`
	Savings         float64  `json:"savings" binding:"gte=0"`
	ExistingDebts   float64  `json:"existing_debts" binding:"gte=0"`
	FinancialGoals  string   `json:"financial_goals"`
	Age             int      `json:"age" binding:"omitempty,gte=0,lte=120"`
	FinancialScore  *float64 `json:"financial_score"`
}

type AddTransactionRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Description string  `json:"description"`
}

type CreateGoalRequest struct {
	Name         string  `json:"name" binding:"required"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0"`
	TargetDate   string  `json:"target_date" binding:"required"`
	Icon         string  `json:"icon"`
}

type UpdateGoalSavingsRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type CreateBudgetRequest struct {
	Category string  `json:"category" binding:"required"`
	Limit    float64 `json:"limit" binding:"required,gt=0"`
}

type DashboardStats struct {
	MonthlyIncome   float64 `json:"monthly_income"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	TotalSavings    float64 `json:"total_savings"`
	TotalIncome     float64 `json:"total_income"`
	TotalExpenses   float64 `json:"total_expenses"`
	NetSavings      float64 `json:"net_savings"`
	TotalSaved      float64 `json:"total_saved"`
	TotalGoalTarget float64 `json:"total_goal_target"`
	GoalsProgress   int     `json:"goals_progress"`
	FinancialScore  int     `json:"financial_score"`
}

type SpendingCategory struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
}

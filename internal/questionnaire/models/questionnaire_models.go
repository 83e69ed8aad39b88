package models

import (
	"time"

	"gorm.io/datatypes"
)

// TotalQuestions is the fixed size of the question bank.
const TotalQuestions = 50

// Question sections (financial personality categories)
const (
	SectionInvestor   = "investor"
	SectionBigSpender = "big_spender"
	SectionBigSaver   = "big_saver"
	SectionOstrich    = "ostrich"
	SectionDebtor     = "debtor"
)

// Sections lists all five sections in their canonical order.
var Sections = []string{
	SectionInvestor,
	SectionBigSpender,
	SectionBigSaver,
	SectionOstrich,
	SectionDebtor,
}

// Question represents a scenario question in the 50-question bank.
// Questions are immutable after seeding.
type Question struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	QuestionNumber  int       `gorm:"uniqueIndex;not null" json:"question_number"`
	Section         string    `gorm:"index;not null" json:"section"`
	Scenario        string    `gorm:"not null" json:"scenario"`
	PersonalityType string    `json:"personality_type"`
	Difficulty      string    `json:"difficulty"` // easy, medium, hard
	CreatedAt       time.Time `json:"created_at"`
}

// QuestionOption is a lettered answer choice for a question.
type QuestionOption struct {
	ID                   uint   `gorm:"primaryKey" json:"id"`
	QuestionID           uint   `gorm:"index;not null" json:"question_id"`
	OptionLetter         string `gorm:"not null" json:"option_letter"`
	OptionText           string `gorm:"not null" json:"option_text"`
	PersonalityIndicator string `json:"personality_indicator"`
	Points               int    `gorm:"not null" json:"points"`
	IsBestAnswer         bool   `json:"is_best_answer"`
}

// UserAnswer records a single answered question. At most one row exists
// per (user, question); PointsEarned is frozen at submit time.
type UserAnswer struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"uniqueIndex:idx_user_question;not null" json:"user_id"`
	QuestionID     uint      `gorm:"uniqueIndex:idx_user_question;not null" json:"question_id"`
	SelectedOption string    `gorm:"not null" json:"selected_option"`
	PointsEarned   int       `gorm:"not null" json:"points_earned"`
	AnsweredAt     time.Time `json:"answered_at"`
	StreakDay      int       `json:"streak_day"`
}

// UserGamification holds per-user running totals, mutated on every answer.
type UserGamification struct {
	ID               uint                        `gorm:"primaryKey" json:"id"`
	UserID           uint                        `gorm:"uniqueIndex;not null" json:"user_id"`
	TotalPoints      int                         `gorm:"default:0" json:"total_points"`
	CurrentLevel     int                         `gorm:"default:1" json:"current_level"`
	CurrentStreak    int                         `gorm:"default:0" json:"current_streak"`
	LongestStreak    int                         `gorm:"default:0" json:"longest_streak"`
	BadgesEarned     datatypes.JSONSlice[string] `json:"badges_earned"`
	LastActivityDate time.Time                   `json:"last_activity_date"`
	WeeklyPoints     int                         `gorm:"default:0" json:"weekly_points"`
	MonthlyPoints    int                         `gorm:"default:0" json:"monthly_points"`
}

// UserPersonality is the recomputed-from-scratch profile for a user.
type UserPersonality struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	PrimaryType       string    `json:"primary_type"`
	SecondaryType     *string   `json:"secondary_type,omitempty"`
	HybridType        *string   `json:"hybrid_type,omitempty"`
	ConfidenceScore   int       `json:"confidence_score"`
	InvestorScore     int       `json:"investor_score"`
	SpenderScore      int       `json:"spender_score"`
	SaverScore        int       `json:"saver_score"`
	OstrichScore      int       `json:"ostrich_score"`
	DebtorScore       int       `json:"debtor_score"`
	LastUpdated       time.Time `json:"last_updated"`
	QuestionsAnswered int       `json:"questions_answered"`
}

// ========== REQUEST/RESPONSE TYPES ==========

type SubmitAnswerRequest struct {
	QuestionID     uint   `json:"question_id" binding:"required" validate:"required"`
	SelectedOption string `json:"selected_option" binding:"required,len=1" validate:"required,len=1,alpha"`
}

type SubmitAnswerResponse struct {
	PointsEarned  int `json:"points_earned"`
	StreakDay     int `json:"streak_day"`
	TotalAnswered int `json:"total_answered"`
}

type QuestionnaireProgress struct {
	Answered   int `json:"answered"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type NextQuestionResponse struct {
	Question *Question             `json:"question"`
	Options  []QuestionOption      `json:"options"`
	Progress QuestionnaireProgress `json:"progress"`
}

type ProgressResponse struct {
	QuestionsAnswered int              `json:"questions_answered"`
	TotalQuestions    int              `json:"total_questions"`
	Percentage        int              `json:"percentage"`
	IsComplete        bool             `json:"is_complete"`
	Personality       *UserPersonality `json:"personality"`
	TotalPoints       int              `json:"total_points"`
	CurrentStreak     int              `json:"current_streak"`
}

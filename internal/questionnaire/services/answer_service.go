package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/database"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/errors"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/logger"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/metrics"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/validation"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/questionnaire/models"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/questionnaire/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// streakBadges maps streak day milestones to badge names.
var streakBadges = map[int]string{
	3:  "3-Day Streak 🔥",
	7:  "Week Warrior 🏆",
	30: "Monthly Master 👑",
	50: "Quiz Champion 🎓",
}

// SubmitAnswer records a user's answer and updates their gamification
// totals in a single transaction. Personality aggregation runs after the
// commit and never fails the submission.
func SubmitAnswer(userID uint, req *models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error) {
	if verrs := validation.Validate(req); verrs != nil {
		return nil, errors.Validation("invalid answer submission",
			fmt.Sprintf("%s: %s", verrs[0].Field, verrs[0].Message))
	}

	letter := strings.ToUpper(req.SelectedOption)

	var response *models.SubmitAnswerResponse
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		existing, err := repository.GetAnswer(tx, userID, req.QuestionID)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.Conflict(fmt.Sprintf("question %d already answered", req.QuestionID))
		}

		option, err := repository.GetOption(tx, req.QuestionID, letter)
		if err != nil {
			return err
		}
		if option == nil {
			return errors.BadRequest(fmt.Sprintf("question %d has no option %q", req.QuestionID, letter))
		}

		answered, err := repository.CountUserAnswers(tx, userID)
		if err != nil {
			return err
		}
		streakDay := int(answered) + 1

		answer := &models.UserAnswer{
			UserID:         userID,
			QuestionID:     req.QuestionID,
			SelectedOption: letter,
			PointsEarned:   option.Points,
			AnsweredAt:     time.Now(),
			StreakDay:      streakDay,
		}
		if err := repository.CreateAnswer(tx, answer); err != nil {
			return err
		}

		if err := applyPoints(tx, userID, option.Points, streakDay); err != nil {
			return err
		}

		response = &models.SubmitAnswerResponse{
			PointsEarned:  option.Points,
			StreakDay:     streakDay,
			TotalAnswered: streakDay,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Best effort: a failed recompute leaves a stale profile, never a
	// failed submission.
	if err := UpdatePersonality(userID); err != nil {
		metrics.RecordAggregationFailure()
		logger.Get().Error("personality aggregation failed",
			zap.Uint("user_id", userID), zap.Error(err))
	}

	return response, nil
}

// applyPoints upserts the gamification row inside the submit transaction.
func applyPoints(tx *gorm.DB, userID uint, points, streakDay int) error {
	record, err := repository.GetGamification(tx, userID)
	if err != nil {
		return err
	}

	if record == nil {
		record = &models.UserGamification{
			UserID:       userID,
			CurrentLevel: 1,
		}
	}

	record.TotalPoints += points
	record.WeeklyPoints += points
	record.MonthlyPoints += points
	record.CurrentStreak = streakDay
	if streakDay > record.LongestStreak {
		record.LongestStreak = streakDay
	}
	record.LastActivityDate = time.Now()

	if badge, ok := streakBadges[streakDay]; ok && !hasBadge(record.BadgesEarned, badge) {
		record.BadgesEarned = append(record.BadgesEarned, badge)
	}

	if record.ID == 0 {
		return repository.CreateGamification(tx, record)
	}
	return repository.SaveGamification(tx, record)
}

func hasBadge(badges []string, badge string) bool {
	for _, b := range badges {
		if b == badge {
			return true
		}
	}
	return false
}

// GetNextQuestion returns the lowest-numbered unanswered question for a
// user. Nil once every question is answered.
func GetNextQuestion(userID uint) (*models.NextQuestionResponse, error) {
	questions, err := repository.GetAllQuestions()
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, errors.NotFound("question bank")
	}

	answers, err := repository.GetUserAnswers(userID)
	if err != nil {
		return nil, err
	}
	answeredIDs := make(map[uint]bool, len(answers))
	for _, a := range answers {
		answeredIDs[a.QuestionID] = true
	}

	progress := models.QuestionnaireProgress{
		Answered:   len(answers),
		Total:      models.TotalQuestions,
		Percentage: len(answers) * 100 / models.TotalQuestions,
	}

	for i := range questions {
		if answeredIDs[questions[i].ID] {
			continue
		}
		options, err := repository.GetOptionsForQuestion(questions[i].ID)
		if err != nil {
			return nil, err
		}
		return &models.NextQuestionResponse{
			Question: &questions[i],
			Options:  options,
			Progress: progress,
		}, nil
	}

	// All answered
	return nil, nil
}

// GetProgress assembles the user's questionnaire status, including their
// personality profile and gamification counters when present.
func GetProgress(userID uint) (*models.ProgressResponse, error) {
	answered, err := repository.CountUserAnswers(database.DB, userID)
	if err != nil {
		return nil, err
	}

	response := &models.ProgressResponse{
		QuestionsAnswered: int(answered),
		TotalQuestions:    models.TotalQuestions,
		Percentage:        int(answered) * 100 / models.TotalQuestions,
		IsComplete:        int(answered) >= models.TotalQuestions,
	}

	personality, err := repository.GetPersonality(userID)
	if err != nil {
		return nil, err
	}
	response.Personality = personality

	gamification, err := repository.GetGamificationForUser(userID)
	if err != nil {
		return nil, err
	}
	if gamification != nil {
		response.TotalPoints = gamification.TotalPoints
		response.CurrentStreak = gamification.CurrentStreak
	}

	return response, nil
}

// HasCompleted reports whether a user has answered every question.
func HasCompleted(userID uint) (bool, error) {
	answered, err := repository.CountUserAnswers(database.DB, userID)
	if err != nil {
		return false, err
	}
	return int(answered) >= models.TotalQuestions, nil
}

// GetPersonality returns the user's aggregated profile, nil before any
// answers have been submitted.
func GetPersonality(userID uint) (*models.UserPersonality, error) {
	return repository.GetPersonality(userID)
}

// GetGamification returns the user's gamification counters, nil before
// any answers have been submitted.
func GetGamification(userID uint) (*models.UserGamification, error) {
	return repository.GetGamificationForUser(userID)
}

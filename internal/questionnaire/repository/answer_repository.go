package repository

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/database"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/errors"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/questionnaire/models"
	"gorm.io/gorm"
)

// GetAnswer retrieves a user's answer to a question, nil when absent
func GetAnswer(db *gorm.DB, userID, questionID uint) (*models.UserAnswer, error) {
	var answer models.UserAnswer
	result := db.
		Where("user_id = ? AND question_id = ?", userID, questionID).
		First(&answer)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Internal("failed to fetch answer", result.Error.Error())
	}
	return &answer, nil
}

// GetUserAnswers retrieves all of a user's answers
func GetUserAnswers(userID uint) ([]models.UserAnswer, error) {
	var answers []models.UserAnswer
	result := database.DB.Where("user_id = ?", userID).Find(&answers)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch answers", result.Error.Error())
	}
	return answers, nil
}

// CountUserAnswers returns how many questions a user has answered
func CountUserAnswers(db *gorm.DB, userID uint) (int64, error) {
	var count int64
	result := db.Model(&models.UserAnswer{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		return 0, errors.Internal("failed to count answers", result.Error.Error())
	}
	return count, nil
}

// CreateAnswer inserts a new answer row. The composite unique index on
// (user_id, question_id) rejects concurrent duplicates, so a writer that
// loses the race gets a conflict rather than an internal error.
func CreateAnswer(db *gorm.DB, answer *models.UserAnswer) error {
	result := db.Create(answer)
	if result.Error != nil {
		if isDuplicateAnswer(result.Error) {
			return errors.Conflict(fmt.Sprintf("question %d already answered", answer.QuestionID))
		}
		return errors.Internal("failed to create answer", result.Error.Error())
	}
	return nil
}

// isDuplicateAnswer matches the unique-index violation on
// (user_id, question_id). Drivers without error translation only report
// the constraint in the message text.
func isDuplicateAnswer(err error) bool {
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

package repository

import (
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/database"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/errors"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/questionnaire/models"
	"gorm.io/gorm"
)

// CountQuestions returns how many questions exist in the bank
func CountQuestions(db *gorm.DB) (int64, error) {
	var count int64
	result := db.Model(&models.Question{}).Count(&count)
	if result.Error != nil {
		return 0, errors.Internal("failed to count questions", result.Error.Error())
	}
	return count, nil
}

// CreateQuestion inserts a question with its options
func CreateQuestion(db *gorm.DB, question *models.Question, options []models.QuestionOption) error {
	if result := db.Create(question); result.Error != nil {
		return errors.Internal("failed to create question", result.Error.Error())
	}

	for i := range options {
		options[i].QuestionID = question.ID
	}
	if result := db.Create(&options); result.Error != nil {
		return errors.Internal("failed to create question options", result.Error.Error())
	}
	return nil
}

// GetAllQuestions retrieves all questions ordered by question number
func GetAllQuestions() ([]models.Question, error) {
	var questions []models.Question
	result := database.DB.Order("question_number ASC").Find(&questions)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch questions", result.Error.Error())
	}
	return questions, nil
}

// GetQuestionByID retrieves a single question, nil when absent
func GetQuestionByID(questionID uint) (*models.Question, error) {
	var question models.Question
	result := database.DB.First(&question, questionID)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Internal("failed to fetch question", result.Error.Error())
	}
	return &question, nil
}

// GetOptionsForQuestion retrieves a question's options ordered by letter
func GetOptionsForQuestion(questionID uint) ([]models.QuestionOption, error) {
	var options []models.QuestionOption
	result := database.DB.
		Where("question_id = ?", questionID).
		Order("option_letter ASC").
		Find(&options)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch options", result.Error.Error())
	}
	return options, nil
}

// GetOption retrieves the option matching a letter on a question, nil when absent
func GetOption(db *gorm.DB, questionID uint, letter string) (*models.QuestionOption, error) {
	var option models.QuestionOption
	result := db.
		Where("question_id = ? AND option_letter = ?", questionID, letter).
		First(&option)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Internal("failed to fetch option", result.Error.Error())
	}
	return &option, nil
}

// GetAllOptions retrieves every option in the bank
func GetAllOptions() ([]models.QuestionOption, error) {
	var options []models.QuestionOption
	result := database.DB.Find(&options)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch options", result.Error.Error())
	}
	return options, nil
}

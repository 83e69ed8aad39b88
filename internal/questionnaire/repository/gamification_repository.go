package repository

import (
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/database"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/errors"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/questionnaire/models"
	"gorm.io/gorm"
)

// GetGamification retrieves a user's gamification row, nil when absent
func GetGamification(db *gorm.DB, userID uint) (*models.UserGamification, error) {
	var record models.UserGamification
	result := db.Where("user_id = ?", userID).First(&record)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Internal("failed to fetch gamification", result.Error.Error())
	}
	return &record, nil
}

// GetGamificationForUser is the non-transactional read used by queries
func GetGamificationForUser(userID uint) (*models.UserGamification, error) {
	return GetGamification(database.DB, userID)
}

// CreateGamification creates the initial gamification row for a user
func CreateGamification(db *gorm.DB, record *models.UserGamification) error {
	result := db.Create(record)
	if result.Error != nil {
		return errors.Internal("failed to create gamification", result.Error.Error())
	}
	return nil
}

// SaveGamification persists an updated gamification row
func SaveGamification(db *gorm.DB, record *models.UserGamification) error {
	result := db.Save(record)
	if result.Error != nil {
		return errors.Internal("failed to update gamification", result.Error.Error())
	}
	return nil
}

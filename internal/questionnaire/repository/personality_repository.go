package repository

import (
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/database"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/errors"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/questionnaire/models"
	"gorm.io/gorm"
)

// GetPersonality retrieves a user's personality profile, nil when absent
func GetPersonality(userID uint) (*models.UserPersonality, error) {
	var profile models.UserPersonality
	result := database.DB.Where("user_id = ?", userID).First(&profile)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Internal("failed to fetch personality", result.Error.Error())
	}
	return &profile, nil
}

// UpsertPersonality creates or replaces the profile row for a user
func UpsertPersonality(profile *models.UserPersonality) error {
	existing, err := GetPersonality(profile.UserID)
	if err != nil {
		return err
	}

	if existing != nil {
		profile.ID = existing.ID
	}

	result := database.DB.Save(profile)
	if result.Error != nil {
		return errors.Internal("failed to upsert personality", result.Error.Error())
	}
	return nil
}

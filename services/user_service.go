package services

import (
	"errors"
	"fmt"

	"github.com/Jared-RS3/food-app-sub002/config"
	"github.com/Jared-RS3/food-app-sub002/models"
	"github.com/Jared-RS3/food-app-sub002/utils"
)

type ProfileInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar"` // base64 data-URI
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	return map[string]interface{}{
		"id":                    user.ID,
		"user_id":               user.UserID,
		"email":                 user.Email,
		"first_name":            user.FirstName,
		"last_name":             user.LastName,
		"username":              user.Username,
		"avatar":                user.Avatar,
		"total_xp":              user.TotalXP,
		"level":                 LevelForXP(user.TotalXP),
		"points":                ProgressWithinLevel(user.TotalXP),
		"tier":                  TierForXP(user.TotalXP),
		"streak":                user.Streak,
		"onboarding_complete":   user.OnboardingComplete,
		"feature_tour_complete": user.FeatureTourComplete,
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Avatar != "" {
		url, err := utils.UploadBase64Image(input.Avatar, "avatars", user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.Avatar = url
	}

	return config.DB.Save(&user).Error
}

func DeleteUser(userID uint) error {
	var user models.User
	result := config.DB.First(&user, userID)
	if result.Error != nil {
		return result.Error
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}

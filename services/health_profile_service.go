// services/health_profile_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"nutrisnap/models"
	"nutrisnap/utils"

	"gorm.io/gorm"
)

type HealthProfileService struct {
	db *gorm.DB
}

func NewHealthProfileService(db *gorm.DB) *HealthProfileService {
	return &HealthProfileService{db: db}
}

type HealthProfileInput struct {
	Age                 int      `json:"age"`
	WeightKg            float64  `json:"weight_kg"`
	HeightCm            float64  `json:"height_cm"`
	ActivityLevel       string   `json:"activity_level"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	HealthGoals         []string `json:"health_goals"`
	Allergies           []string `json:"allergies"`
	Notes               string   `json:"notes"`
}

var activityLevels = map[string]bool{
	models.ActivitySedentary:  true,
	models.ActivityLight:      true,
	models.ActivityModerate:   true,
	models.ActivityActive:     true,
	models.ActivityVeryActive: true,
}

// Upsert creates the patient's profile on first save and overwrites it
// afterwards. BMI is recomputed from weight/height on every save.
func (s *HealthProfileService) Upsert(userID uint, in HealthProfileInput) (*models.HealthProfile, error) {
	if in.ActivityLevel != "" && !activityLevels[in.ActivityLevel] {
		return nil, fmt.Errorf("%w: unknown activity level %q", ErrValidation, in.ActivityLevel)
	}

	bmi, err := utils.CalculateBMI(in.HeightCm, in.WeightKg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	restrictions, _ := json.Marshal(in.DietaryRestrictions)
	goals, _ := json.Marshal(in.HealthGoals)
	allergies, _ := json.Marshal(in.Allergies)

	var profile models.HealthProfile
	err = s.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	profile.UserID = userID
	profile.Age = in.Age
	profile.WeightKg = in.WeightKg
	profile.HeightCm = in.HeightCm
	profile.BMI = bmi
	profile.ActivityLevel = in.ActivityLevel
	profile.DietaryRestrictions = restrictions
	profile.HealthGoals = goals
	profile.Allergies = allergies
	profile.Notes = in.Notes

	if err := s.db.Save(&profile).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return &profile, nil
}

func (s *HealthProfileService) Get(userID uint) (*models.HealthProfile, error) {
	var profile models.HealthProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: no health profile yet", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return &profile, nil
}

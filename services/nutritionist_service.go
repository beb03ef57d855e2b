// services/nutritionist_service.go
package services

import (
	"errors"
	"fmt"

	"nutrisnap/models"

	"gorm.io/gorm"
)

type NutritionistService struct {
	db *gorm.DB
}

func NewNutritionistService(db *gorm.DB) *NutritionistService {
	return &NutritionistService{db: db}
}

// NutritionistCard is what patients see when picking a nutritionist.
// SessionPrice is informational only.
type NutritionistCard struct {
	UserID             uint    `json:"user_id"`
	FullName           string  `json:"full_name"`
	ProfilePicture     string  `json:"profile_picture"`
	RegistrationNumber string  `json:"registration_number"`
	Specialty          string  `json:"specialty"`
	Bio                string  `json:"bio"`
	YearsOfExperience  int     `json:"years_of_experience"`
	SessionPrice       float64 `json:"session_price"`
}

func (s *NutritionistService) List() ([]NutritionistCard, error) {
	var cards []NutritionistCard
	err := s.db.
		Table("nutritionist_profiles").
		Select("nutritionist_profiles.user_id, users.full_name, users.profile_picture, nutritionist_profiles.registration_number, nutritionist_profiles.specialty, nutritionist_profiles.bio, nutritionist_profiles.years_of_experience, nutritionist_profiles.session_price").
		Joins("JOIN users ON users.id = nutritionist_profiles.user_id").
		Where("users.disabled = ?", false).
		Order("users.full_name ASC").
		Scan(&cards).Error
	return cards, err
}

func (s *NutritionistService) Get(userID uint) (*NutritionistCard, error) {
	var card NutritionistCard
	err := s.db.
		Table("nutritionist_profiles").
		Select("nutritionist_profiles.user_id, users.full_name, users.profile_picture, nutritionist_profiles.registration_number, nutritionist_profiles.specialty, nutritionist_profiles.bio, nutritionist_profiles.years_of_experience, nutritionist_profiles.session_price").
		Joins("JOIN users ON users.id = nutritionist_profiles.user_id").
		Where("nutritionist_profiles.user_id = ? AND users.disabled = ?", userID, false).
		Scan(&card).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if card.UserID == 0 {
		return nil, fmt.Errorf("%w: nutritionist %d", ErrNotFound, userID)
	}
	return &card, nil
}

type NutritionistProfileInput struct {
	RegistrationNumber string  `json:"registration_number"`
	Specialty          string  `json:"specialty"`
	Bio                string  `json:"bio"`
	YearsOfExperience  int     `json:"years_of_experience"`
	SessionPrice       float64 `json:"session_price"`
}

// Upsert creates or overwrites the acting nutritionist's public card.
func (s *NutritionistService) Upsert(userID uint, in NutritionistProfileInput) (*models.NutritionistProfile, error) {
	var profile models.NutritionistProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	profile.UserID = userID
	profile.RegistrationNumber = in.RegistrationNumber
	profile.Specialty = in.Specialty
	profile.Bio = in.Bio
	profile.YearsOfExperience = in.YearsOfExperience
	profile.SessionPrice = in.SessionPrice

	if err := s.db.Save(&profile).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return &profile, nil
}

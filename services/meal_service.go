// services/meal_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"nutrisnap/models"
	"nutrisnap/utils"

	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type MealInput struct {
	PhotoURL    string
	PhotoKey    string
	Type        string // empty → derived from AteAt
	AteAt       time.Time
	Description string
}

// Add records a meal for a patient. When the caller supplies no type
// the standard boundary table classifies the timestamp.
func (s *MealService) Add(userID uint, in MealInput) (*models.Meal, error) {
	if in.PhotoURL == "" {
		return nil, fmt.Errorf("%w: meal photo is required", ErrValidation)
	}
	if in.AteAt.IsZero() {
		in.AteAt = time.Now()
	}
	if in.Type == "" {
		in.Type = utils.ClassifyMealTime(in.AteAt)
	} else if !utils.ValidMealType(in.Type) {
		return nil, fmt.Errorf("%w: unknown meal type %q", ErrValidation, in.Type)
	}

	meal := &models.Meal{
		UserID:      userID,
		PhotoURL:    in.PhotoURL,
		PhotoKey:    in.PhotoKey,
		Type:        in.Type,
		AteAt:       in.AteAt,
		Description: in.Description,
	}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return meal, nil
}

// QuickCapture is the one-tap path: timestamp is now, type comes from
// the quick-capture boundary table.
func (s *MealService) QuickCapture(userID uint, photoURL, photoKey, description string) (*models.Meal, error) {
	now := time.Now()
	return s.Add(userID, MealInput{
		PhotoURL:    photoURL,
		PhotoKey:    photoKey,
		Type:        utils.QuickCapturePolicy.Classify(now),
		AteAt:       now,
		Description: description,
	})
}

func (s *MealService) List(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) Get(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: meal %d", ErrNotFound, mealID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return &meal, nil
}

// Update edits a meal's fields. Only the owning patient can touch it;
// evaluations that already copied this meal are unaffected.
func (s *MealService) Update(userID, mealID uint, in MealInput) (*models.Meal, error) {
	meal, err := s.Get(userID, mealID)
	if err != nil {
		return nil, err
	}

	if in.PhotoURL != "" {
		meal.PhotoURL = in.PhotoURL
		meal.PhotoKey = in.PhotoKey
	}
	if !in.AteAt.IsZero() {
		meal.AteAt = in.AteAt
	}
	if in.Type != "" {
		if !utils.ValidMealType(in.Type) {
			return nil, fmt.Errorf("%w: unknown meal type %q", ErrValidation, in.Type)
		}
		meal.Type = in.Type
	}
	if in.Description != "" {
		meal.Description = in.Description
	}

	if err := s.db.Save(meal).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return meal, nil
}

func (s *MealService) Delete(userID, mealID uint) error {
	res := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{})
	if res.Error != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: meal %d", ErrNotFound, mealID)
	}
	return nil
}

// ListByDateRange returns the patient's meals whose date falls within
// [from, to], inclusive on both calendar days.
func (s *MealService) ListByDateRange(userID uint, from, to time.Time) ([]models.Meal, error) {
	start := dayStart(from)
	end := dayStart(to).Add(24 * time.Hour)

	var meals []models.Meal
	err := s.db.
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, start, end).
		Order("ate_at ASC").
		Find(&meals).Error
	return meals, err
}

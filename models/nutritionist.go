package models

import "gorm.io/gorm"

// NutritionistProfile is the public-facing card patients browse when
// choosing who to request an evaluation from. SessionPrice is display
// only — no payment processing happens here.
type NutritionistProfile struct {
	gorm.Model
	UserID             uint   `gorm:"uniqueIndex;not null"`
	RegistrationNumber string `gorm:"size:32"`
	Specialty          string
	Bio                string `gorm:"type:text"`
	YearsOfExperience  int
	SessionPrice       float64
}

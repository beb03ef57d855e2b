package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Activity levels a patient can report on their health profile.
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

// HealthProfile holds each patient's health data. At most one row per
// patient; BMI is derived from weight/height on every save.
type HealthProfile struct {
	gorm.Model
	UserID              uint `gorm:"uniqueIndex;not null"`
	Age                 int
	WeightKg            float64
	HeightCm            float64
	BMI                 float64
	ActivityLevel       string         `gorm:"size:16"`
	DietaryRestrictions datatypes.JSON `gorm:"type:jsonb"`
	HealthGoals         datatypes.JSON `gorm:"type:jsonb"`
	Allergies           datatypes.JSON `gorm:"type:jsonb"`
	Notes               string         `gorm:"type:text"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// One photographed meal. Type is always one of the six categories from
// utils/mealtime.go; AteAt holds both the calendar date and time of day.
type Meal struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null"` // FK → users.id (the patient)
	PhotoURL    string    `gorm:"not null"`
	PhotoKey    string    // S3 object key, kept for replacement/cleanup
	Type        string    `gorm:"size:20;not null"` // "breakfast"|"lunch"|…
	AteAt       time.Time `gorm:"index;not null"`
	Description string    `gorm:"type:text"`
}

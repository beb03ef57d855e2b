package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	UserTypePatient      = "patient"
	UserTypeNutritionist = "nutritionist"
)

// User carries the account identity. UserType is assigned once at
// registration and never changes afterwards.
type User struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	FullName       string
	UserType       string `gorm:"size:16;not null;index"` // "patient" | "nutritionist"
	ProfilePicture string
	MFAEnabled     bool
	MFACode        string
	ResetToken     string
	ResetTokenExp  time.Time
	Disabled       bool
}

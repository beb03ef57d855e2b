package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Evaluation statuses. "accepted" is the canonical word for the working
// state; some clients render it as "in-progress" (see StatusDisplay).
const (
	EvaluationPending   = "pending"
	EvaluationAccepted  = "accepted"
	EvaluationRejected  = "rejected"
	EvaluationCompleted = "completed"
)

// StatusDisplay maps a stored status to the label shown in the UI.
func StatusDisplay(status string) string {
	if status == EvaluationAccepted {
		return "in-progress"
	}
	return status
}

// Evaluation is a patient's request for a nutritionist to review their
// meals over a period. NutritionistID is nil while the request sits in
// the open pool; whichever nutritionist accepts it becomes the assignee.
//
// Meals and HealthSnapshot are value copies frozen at creation time —
// the patient editing or deleting live data afterwards never changes a
// submitted evaluation. Rows are never deleted (append-only history).
type Evaluation struct {
	gorm.Model
	PatientID       uint      `gorm:"index;not null"`
	NutritionistID  *uint     `gorm:"index"`
	PeriodStart     time.Time `gorm:"not null"`
	PeriodEnd       time.Time `gorm:"not null"`
	Status          string    `gorm:"size:16;not null;index;default:'pending'"`
	Feedback        string    `gorm:"type:text"`
	RejectionReason string    `gorm:"type:text"`
	AcceptedAt      *time.Time
	CompletedAt     *time.Time

	Meals          []EvaluationMeal          `gorm:"foreignKey:EvaluationID"`
	HealthSnapshot *EvaluationHealthSnapshot `gorm:"foreignKey:EvaluationID"`
}

// Assigned reports whether the evaluation has left the open pool.
func (e *Evaluation) Assigned() bool { return e.NutritionistID != nil }

// EvaluationMeal is a frozen copy of one meal as it existed when the
// evaluation was created. MealID points back at the live row for
// reference but none of the copied fields follow later edits.
type EvaluationMeal struct {
	gorm.Model
	EvaluationID uint `gorm:"index;not null"`
	MealID       uint `gorm:"not null"`
	Position     int  `gorm:"not null"` // order within the evaluation
	PhotoURL     string
	Type         string `gorm:"size:20"`
	AteAt        time.Time
	Description  string `gorm:"type:text"`
}

// EvaluationHealthSnapshot is a deep copy of the patient's health
// profile at creation time. Absent entirely when the patient had no
// profile yet.
type EvaluationHealthSnapshot struct {
	gorm.Model
	EvaluationID        uint `gorm:"uniqueIndex;not null"`
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

// services/evaluation_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"nutrisnap/models"

	"gorm.io/gorm"
)

// EvaluationService drives the evaluation lifecycle:
//
//	pending → accepted → completed
//	pending → rejected
//
// No transition leaves completed or rejected. Every mutating write is
// conditioned on the expected current status (and assignee) so two
// nutritionists racing on the same open-pool request cannot both win.
type EvaluationService struct {
	db *gorm.DB
}

func NewEvaluationService(db *gorm.DB) *EvaluationService {
	return &EvaluationService{db: db}
}

// Create opens a new evaluation request for a patient. nutritionistID
// may be nil, which puts the request in the open pool for any
// nutritionist to claim.
//
// The meals in [periodStart, periodEnd] (inclusive, by calendar date)
// and the patient's current health profile are copied by value into the
// new record inside one transaction, so the attached data is exactly
// what existed at this instant. A missing profile or an empty meal set
// is fine — nutritionists can still reject such requests.
func (s *EvaluationService) Create(patientID uint, nutritionistID *uint, periodStart, periodEnd time.Time) (*models.Evaluation, error) {
	start := dayStart(periodStart)
	end := dayStart(periodEnd)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: period start must not be after period end", ErrValidation)
	}

	if nutritionistID != nil {
		var n models.User
		err := s.db.Where("id = ? AND user_type = ? AND disabled = ?", *nutritionistID, models.UserTypeNutritionist, false).
			First(&n).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: nutritionist %d", ErrNotFound, *nutritionistID)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
	}

	eval := &models.Evaluation{
		PatientID:      patientID,
		NutritionistID: nutritionistID,
		PeriodStart:    start,
		PeriodEnd:      end,
		Status:         models.EvaluationPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var meals []models.Meal
		if err := tx.
			Where("user_id = ? AND ate_at >= ? AND ate_at < ?", patientID, start, end.Add(24*time.Hour)).
			Order("ate_at ASC").
			Find(&meals).Error; err != nil {
			return err
		}

		if err := tx.Create(eval).Error; err != nil {
			return err
		}

		for i, m := range meals {
			link := models.EvaluationMeal{
				EvaluationID: eval.ID,
				MealID:       m.ID,
				Position:     i,
				PhotoURL:     m.PhotoURL,
				Type:         m.Type,
				AteAt:        m.AteAt,
				Description:  m.Description,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		var profile models.HealthProfile
		err := tx.Where("user_id = ?", patientID).First(&profile).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // no profile yet, no snapshot row
		}
		if err != nil {
			return err
		}

		snap := models.EvaluationHealthSnapshot{
			EvaluationID:        eval.ID,
			Age:                 profile.Age,
			WeightKg:            profile.WeightKg,
			HeightCm:            profile.HeightCm,
			BMI:                 profile.BMI,
			ActivityLevel:       profile.ActivityLevel,
			DietaryRestrictions: append([]byte(nil), profile.DietaryRestrictions...),
			HealthGoals:         append([]byte(nil), profile.HealthGoals...),
			Allergies:           append([]byte(nil), profile.Allergies...),
			Notes:               profile.Notes,
		}
		return tx.Create(&snap).Error
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if nutritionistID != nil {
		EmitAlert(*nutritionistID, "evaluation.requested",
			fmt.Sprintf("A patient requested an evaluation for %s to %s.",
				start.Format("2006-01-02"), end.Format("2006-01-02")))
	}

	return s.Get(eval.ID)
}

// Accept claims a pending evaluation. An unassigned request is claimed
// by the acting nutritionist; an assigned one can only be accepted by
// its assignee. The write is a conditional update keyed on the current
// status so a concurrent second accept loses cleanly.
func (s *EvaluationService) Accept(evalID, nutritionistID uint) (*models.Evaluation, error) {
	eval, err := s.Get(evalID)
	if err != nil {
		return nil, err
	}
	if eval.Status != models.EvaluationPending {
		return nil, fmt.Errorf("%w: cannot accept from %q", ErrInvalidTransition, eval.Status)
	}
	if eval.Assigned() && *eval.NutritionistID != nutritionistID {
		return nil, fmt.Errorf("%w: assigned to another nutritionist", ErrNotAuthorized)
	}

	now := time.Now()
	res := s.db.Model(&models.Evaluation{}).
		Where("id = ? AND status = ?", evalID, models.EvaluationPending).
		Where("nutritionist_id IS NULL OR nutritionist_id = ?", nutritionistID).
		Updates(map[string]interface{}{
			"status":          models.EvaluationAccepted,
			"nutritionist_id": nutritionistID,
			"accepted_at":     now,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, res.Error)
	}
	if res.RowsAffected == 0 {
		// someone else got there first
		return nil, fmt.Errorf("%w: cannot accept", ErrInvalidTransition)
	}

	EmitAlert(eval.PatientID, "evaluation.accepted", "A nutritionist accepted your evaluation request.")
	return s.Get(evalID)
}

// Reject declines a pending evaluation with a non-empty reason.
func (s *EvaluationService) Reject(evalID, nutritionistID uint, reason string) (*models.Evaluation, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", ErrValidation)
	}

	eval, err := s.Get(evalID)
	if err != nil {
		return nil, err
	}
	if eval.Status != models.EvaluationPending {
		return nil, fmt.Errorf("%w: cannot reject from %q", ErrInvalidTransition, eval.Status)
	}
	if eval.Assigned() && *eval.NutritionistID != nutritionistID {
		return nil, fmt.Errorf("%w: assigned to another nutritionist", ErrNotAuthorized)
	}

	res := s.db.Model(&models.Evaluation{}).
		Where("id = ? AND status = ?", evalID, models.EvaluationPending).
		Where("nutritionist_id IS NULL OR nutritionist_id = ?", nutritionistID).
		Updates(map[string]interface{}{
			"status":           models.EvaluationRejected,
			"nutritionist_id":  nutritionistID,
			"rejection_reason": reason,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: cannot reject", ErrInvalidTransition)
	}

	EmitAlert(eval.PatientID, "evaluation.rejected", "Your evaluation request was declined.")
	return s.Get(evalID)
}

// SaveDraftFeedback stores or overwrites the working feedback text
// without changing status. Repeatable on purpose — only the latest text
// is kept.
func (s *EvaluationService) SaveDraftFeedback(evalID, nutritionistID uint, feedback string) (*models.Evaluation, error) {
	eval, err := s.Get(evalID)
	if err != nil {
		return nil, err
	}
	if eval.Status != models.EvaluationAccepted {
		return nil, fmt.Errorf("%w: feedback drafts require an accepted evaluation", ErrInvalidTransition)
	}
	if *eval.NutritionistID != nutritionistID {
		return nil, fmt.Errorf("%w: assigned to another nutritionist", ErrNotAuthorized)
	}

	res := s.db.Model(&models.Evaluation{}).
		Where("id = ? AND status = ? AND nutritionist_id = ?", evalID, models.EvaluationAccepted, nutritionistID).
		Update("feedback", feedback)
	if res.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: feedback drafts require an accepted evaluation", ErrInvalidTransition)
	}
	return s.Get(evalID)
}

// Complete finishes an accepted evaluation with final feedback. After
// this the record is read-only.
func (s *EvaluationService) Complete(evalID, nutritionistID uint, feedback string) (*models.Evaluation, error) {
	if strings.TrimSpace(feedback) == "" {
		return nil, fmt.Errorf("%w: feedback is required to complete", ErrValidation)
	}

	eval, err := s.Get(evalID)
	if err != nil {
		return nil, err
	}
	if eval.Status != models.EvaluationAccepted {
		return nil, fmt.Errorf("%w: cannot complete from %q", ErrInvalidTransition, eval.Status)
	}
	if *eval.NutritionistID != nutritionistID {
		return nil, fmt.Errorf("%w: assigned to another nutritionist", ErrNotAuthorized)
	}

	now := time.Now()
	res := s.db.Model(&models.Evaluation{}).
		Where("id = ? AND status = ? AND nutritionist_id = ?", evalID, models.EvaluationAccepted, nutritionistID).
		Updates(map[string]interface{}{
			"status":       models.EvaluationCompleted,
			"feedback":     feedback,
			"completed_at": now,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: cannot complete", ErrInvalidTransition)
	}

	EmitAlert(eval.PatientID, "evaluation.completed", "Your evaluation is complete. Feedback is ready.")
	return s.Get(evalID)
}

// Get loads one evaluation with its frozen meals (in order) and health
// snapshot.
func (s *EvaluationService) Get(evalID uint) (*models.Evaluation, error) {
	var eval models.Evaluation
	err := s.db.
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("HealthSnapshot").
		First(&eval, evalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: evaluation %d", ErrNotFound, evalID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return &eval, nil
}

// GetForUser enforces read access: patients see their own evaluations,
// nutritionists see the open pool plus anything assigned to them.
func (s *EvaluationService) GetForUser(evalID, userID uint, userType string) (*models.Evaluation, error) {
	eval, err := s.Get(evalID)
	if err != nil {
		return nil, err
	}
	switch userType {
	case models.UserTypePatient:
		if eval.PatientID != userID {
			return nil, fmt.Errorf("%w: not your evaluation", ErrNotAuthorized)
		}
	case models.UserTypeNutritionist:
		open := !eval.Assigned() && eval.Status == models.EvaluationPending
		if !open && (!eval.Assigned() || *eval.NutritionistID != userID) {
			return nil, fmt.Errorf("%w: not your evaluation", ErrNotAuthorized)
		}
	default:
		return nil, fmt.Errorf("%w: unknown user type", ErrNotAuthorized)
	}
	return eval, nil
}

func (s *EvaluationService) ListForPatient(patientID uint) ([]models.Evaluation, error) {
	var evals []models.Evaluation
	err := s.db.
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("HealthSnapshot").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&evals).Error
	return evals, err
}

// ListPool returns pending requests nobody has claimed yet.
func (s *EvaluationService) ListPool() ([]models.Evaluation, error) {
	var evals []models.Evaluation
	err := s.db.
		Where("status = ? AND nutritionist_id IS NULL", models.EvaluationPending).
		Order("created_at ASC").
		Find(&evals).Error
	return evals, err
}

func (s *EvaluationService) ListForNutritionist(nutritionistID uint) ([]models.Evaluation, error) {
	var evals []models.Evaluation
	err := s.db.
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("HealthSnapshot").
		Where("nutritionist_id = ?", nutritionistID).
		Order("created_at DESC").
		Find(&evals).Error
	return evals, err
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

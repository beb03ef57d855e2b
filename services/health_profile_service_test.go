package services

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"nutrisnap/models"
)

func TestHealthProfileLazyCreateAndOverwrite(t *testing.T) {
	db := newTestDB(t)
	svc := NewHealthProfileService(db)
	patient := newTestUser(t, db, models.UserTypePatient)

	if _, err := svc.Get(patient.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get before save err = %v, want ErrNotFound", err)
	}

	first, err := svc.Upsert(patient.ID, HealthProfileInput{
		Age: 29, WeightKg: 70, HeightCm: 170,
		ActivityLevel: models.ActivityActive,
		HealthGoals:   []string{"lose weight"},
	})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	wantBMI := 70.0 / (1.7 * 1.7)
	if math.Abs(first.BMI-wantBMI) > 1e-9 {
		t.Errorf("bmi = %v, want %v", first.BMI, wantBMI)
	}

	second, err := svc.Upsert(patient.ID, HealthProfileInput{
		Age: 29, WeightKg: 75, HeightCm: 170,
		ActivityLevel: models.ActivityActive,
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.ID != first.ID {
		t.Error("second save must overwrite, not create a new row")
	}
	if math.Abs(second.BMI-75.0/(1.7*1.7)) > 1e-9 {
		t.Errorf("bmi not recomputed: %v", second.BMI)
	}

	var count int64
	db.Model(&models.HealthProfile{}).Where("user_id = ?", patient.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected one profile row, got %d", count)
	}
}

func TestHealthProfileListsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewHealthProfileService(db)
	patient := newTestUser(t, db, models.UserTypePatient)

	_, err := svc.Upsert(patient.ID, HealthProfileInput{
		Age: 40, WeightKg: 82, HeightCm: 178,
		ActivityLevel:       models.ActivitySedentary,
		DietaryRestrictions: []string{"vegetarian", "lactose-free"},
		Allergies:           []string{"shellfish"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := svc.Get(patient.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var restrictions []string
	if err := json.Unmarshal(got.DietaryRestrictions, &restrictions); err != nil {
		t.Fatalf("unmarshal restrictions: %v", err)
	}
	if len(restrictions) != 2 || restrictions[0] != "vegetarian" {
		t.Errorf("restrictions = %v", restrictions)
	}
}

func TestHealthProfileValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewHealthProfileService(db)
	patient := newTestUser(t, db, models.UserTypePatient)

	if _, err := svc.Upsert(patient.ID, HealthProfileInput{
		WeightKg: 70, HeightCm: 170, ActivityLevel: "couch",
	}); !errors.Is(err, ErrValidation) {
		t.Errorf("bad activity err = %v, want ErrValidation", err)
	}

	if _, err := svc.Upsert(patient.ID, HealthProfileInput{
		WeightKg: 0, HeightCm: 170,
	}); !errors.Is(err, ErrValidation) {
		t.Errorf("zero weight err = %v, want ErrValidation", err)
	}
}

package services

import (
	"errors"
	"testing"
	"time"

	"nutrisnap/models"
	"nutrisnap/utils"
)

func TestAddMealClassifiesWhenTypeOmitted(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	patient := newTestUser(t, db, models.UserTypePatient)

	cases := []struct {
		hh, mm int
		want   string
	}{
		{8, 0, utils.MealBreakfast},
		{12, 30, utils.MealLunch},
		{15, 0, utils.MealAfternoonSnack},
		{22, 30, utils.MealSupper},
	}
	for _, c := range cases {
		meal, err := svc.Add(patient.ID, MealInput{
			PhotoURL: "https://cdn.example.com/p.jpg",
			AteAt:    date(2025, 1, 2, c.hh, c.mm),
		})
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if meal.Type != c.want {
			t.Errorf("auto type at %02d:%02d = %q, want %q", c.hh, c.mm, meal.Type, c.want)
		}
	}
}

func TestAddMealValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	patient := newTestUser(t, db, models.UserTypePatient)

	if _, err := svc.Add(patient.ID, MealInput{AteAt: date(2025, 1, 2, 12, 0)}); !errors.Is(err, ErrValidation) {
		t.Errorf("missing photo err = %v, want ErrValidation", err)
	}
	if _, err := svc.Add(patient.ID, MealInput{
		PhotoURL: "https://cdn.example.com/p.jpg",
		Type:     "brunch",
		AteAt:    date(2025, 1, 2, 12, 0),
	}); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown type err = %v, want ErrValidation", err)
	}
}

func TestExplicitTypeWins(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	patient := newTestUser(t, db, models.UserTypePatient)

	// 12:30 would classify as lunch, but the patient says supper
	meal, err := svc.Add(patient.ID, MealInput{
		PhotoURL: "https://cdn.example.com/p.jpg",
		Type:     utils.MealSupper,
		AteAt:    date(2025, 1, 2, 12, 30),
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if meal.Type != utils.MealSupper {
		t.Errorf("type = %q, explicit choice must win", meal.Type)
	}
}

func TestQuickCapture(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	patient := newTestUser(t, db, models.UserTypePatient)

	before := time.Now()
	meal, err := svc.QuickCapture(patient.ID, "https://cdn.example.com/p.jpg", "", "quick lunch")
	if err != nil {
		t.Fatalf("quick capture: %v", err)
	}
	if !utils.ValidMealType(meal.Type) {
		t.Errorf("quick capture type = %q", meal.Type)
	}
	if meal.AteAt.Before(before) || meal.AteAt.After(time.Now()) {
		t.Errorf("quick capture timestamp not now: %v", meal.AteAt)
	}
	if meal.Description != "quick lunch" {
		t.Errorf("description = %q", meal.Description)
	}
}

func TestMealOwnershipScoping(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	owner := newTestUser(t, db, models.UserTypePatient)
	stranger := newTestUser(t, db, models.UserTypePatient)

	meal := newTestMeal(t, db, owner.ID, date(2025, 1, 2, 12, 0), utils.MealLunch)

	if _, err := svc.Get(stranger.ID, meal.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("stranger get err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(stranger.ID, meal.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("stranger delete err = %v, want ErrNotFound", err)
	}
	if _, err := svc.Update(stranger.ID, meal.ID, MealInput{Description: "mine"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("stranger update err = %v, want ErrNotFound", err)
	}

	// owner still sees it untouched
	got, err := svc.Get(owner.ID, meal.ID)
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if got.Description != "" {
		t.Errorf("meal mutated by stranger: %q", got.Description)
	}

	if err := svc.Delete(owner.ID, meal.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if err := svc.Delete(owner.ID, meal.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete err = %v, want ErrNotFound", err)
	}
}

func TestListByDateRangeInclusive(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	patient := newTestUser(t, db, models.UserTypePatient)

	in1 := newTestMeal(t, db, patient.ID, date(2025, 1, 1, 7, 0), utils.MealBreakfast)
	in2 := newTestMeal(t, db, patient.ID, date(2025, 1, 7, 23, 30), utils.MealSupper)
	newTestMeal(t, db, patient.ID, date(2024, 12, 31, 23, 59), utils.MealSupper)
	newTestMeal(t, db, patient.ID, date(2025, 1, 8, 0, 0), utils.MealSupper)

	meals, err := svc.ListByDateRange(patient.ID, date(2025, 1, 1, 0, 0), date(2025, 1, 7, 0, 0))
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(meals) != 2 {
		t.Fatalf("got %d meals, want 2", len(meals))
	}
	if meals[0].ID != in1.ID || meals[1].ID != in2.ID {
		t.Error("range results wrong or out of order")
	}
}

func TestMealStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	patient := newTestUser(t, db, models.UserTypePatient)

	newTestMeal(t, db, patient.ID, date(2025, 1, 1, 7, 0), utils.MealBreakfast)
	newTestMeal(t, db, patient.ID, date(2025, 1, 1, 12, 30), utils.MealLunch)
	newTestMeal(t, db, patient.ID, date(2025, 1, 3, 12, 30), utils.MealLunch)
	newTestMeal(t, db, patient.ID, date(2025, 2, 1, 12, 30), utils.MealLunch) // outside

	stats, err := svc.MealStatsForRange(patient.ID, date(2025, 1, 1, 0, 0), date(2025, 1, 7, 0, 0))
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalMeals != 3 {
		t.Errorf("total = %d, want 3", stats.TotalMeals)
	}
	if stats.CountByType[utils.MealLunch] != 2 {
		t.Errorf("lunch count = %d, want 2", stats.CountByType[utils.MealLunch])
	}
	if stats.DaysLogged != 2 {
		t.Errorf("days logged = %d, want 2", stats.DaysLogged)
	}
	if stats.CountByDay["2025-01-01"] != 2 {
		t.Errorf("jan 1 count = %d, want 2", stats.CountByDay["2025-01-01"])
	}
}

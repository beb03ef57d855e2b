package services

import (
	"fmt"
	"testing"
	"time"

	"nutrisnap/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.NutritionistProfile{},
		&models.HealthProfile{},
		&models.Meal{},
		&models.Evaluation{},
		&models.EvaluationMeal{},
		&models.EvaluationHealthSnapshot{},
		&models.Alert{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

var userSeq int

func newTestUser(t *testing.T, db *gorm.DB, userType string) *models.User {
	t.Helper()
	userSeq++
	u := &models.User{
		Email:    fmt.Sprintf("user%d@example.com", userSeq),
		Password: "x",
		FullName: fmt.Sprintf("User %d", userSeq),
		UserType: userType,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func newTestMeal(t *testing.T, db *gorm.DB, userID uint, ateAt time.Time, mealType string) *models.Meal {
	t.Helper()
	m := &models.Meal{
		UserID:   userID,
		PhotoURL: "https://cdn.example.com/photo.jpg",
		Type:     mealType,
		AteAt:    ateAt,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("create meal: %v", err)
	}
	return m
}

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

package services

import (
	"errors"
	"testing"

	"nutrisnap/config"
	"nutrisnap/models"
	"nutrisnap/utils"
)

func TestAuthenticateUser(t *testing.T) {
	orig := config.DB
	config.DB = newTestDB(t)
	defer func() { config.DB = orig }()

	hash, err := utils.HashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	active := &models.User{Email: "active@example.com", Password: hash, FullName: "A", UserType: models.UserTypePatient}
	disabled := &models.User{Email: "gone@example.com", Password: hash, FullName: "D", UserType: models.UserTypePatient, Disabled: true}
	if err := config.DB.Create(active).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := config.DB.Create(disabled).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := AuthenticateUser("active@example.com", "secret")
	if err != nil {
		t.Fatalf("authenticate active: %v", err)
	}
	if got.ID != active.ID {
		t.Errorf("got user %d, want %d", got.ID, active.ID)
	}

	if _, err := AuthenticateUser("active@example.com", "wrong"); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("wrong password: err = %v, want ErrNotAuthorized", err)
	}
	if _, err := AuthenticateUser("gone@example.com", "secret"); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("disabled account: err = %v, want ErrNotAuthorized", err)
	}
	if _, err := AuthenticateUser("nobody@example.com", "secret"); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("unknown email: err = %v, want ErrNotAuthorized", err)
	}
}

package services

import (
	"fmt"

	"nutrisnap/config"
	"nutrisnap/models"
	"nutrisnap/utils"
)

// RegisterUser creates an account. userType is fixed here, at first
// contact, and is never updated afterwards.
func RegisterUser(email, password, fullName, userType string) error {
	if userType != models.UserTypePatient && userType != models.UserTypeNutritionist {
		return fmt.Errorf("%w: user_type must be %q or %q", ErrValidation,
			models.UserTypePatient, models.UserTypeNutritionist)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
		UserType: userType,
		Disabled: false,
	}

	result := config.DB.Create(&user)
	return result.Error
}

// AuthenticateUser checks the credentials against an active account.
// Disabled accounts fail the same way a wrong password does.
func AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrNotAuthorized)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, fmt.Errorf("%w: invalid credentials", ErrNotAuthorized)
	}

	return &user, nil
}

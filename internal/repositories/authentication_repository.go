package repositories

import (
	"errors"
	"stickerDesk/internal/errs"
	"stickerDesk/internal/models"
	"stickerDesk/internal/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthenticationRepository struct {
	db *gorm.DB
}

func NewAuthenticationRepository(db *gorm.DB) *AuthenticationRepository {
	return &AuthenticationRepository{
		db: db,
	}
}

func (ar *AuthenticationRepository) CreateUser(user *models.User) (*models.User, []error) {
	var errors []error
	result := ar.db.Create(user)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	if result.RowsAffected == 0 {
		errors = append(errors, errs.ErrUserNotFound)
		return nil, errors
	}
	return user, nil
}

func (ar *AuthenticationRepository) CheckIfUserExists(email string) *models.User {
	var user models.User
	result := ar.db.Where("email = ?", email).First(&user)
	if result.Error == nil && result.RowsAffected > 0 {
		return &user
	}
	return nil
}

func (ar *AuthenticationRepository) FindUserById(userID uuid.UUID) (*models.User, error) {
	var user models.User
	result := ar.db.Where("id = ?", userID).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, errs.ErrUserNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (ar *AuthenticationRepository) Login(login *models.LoginRequestBody) (*models.User, []error) {
	var errors []error
	user := ar.CheckIfUserExists(login.Email)
	if user == nil {
		errors := append(errors, errs.ErrUserNotFound)
		return nil, errors
	}
	if err := utils.CompareHashAndPassword(user.PasswordHash, login.Password); err != nil {
		errors := append(errors, errs.ErrWrongPassword)
		return nil, errors
	}
	return user, nil
}

func (ar *AuthenticationRepository) CreateSession(userID uuid.UUID) (*models.Session, error) {
	session := &models.Session{
		UserID:     userID,
		IsActive:   true,
		LastActive: time.Now(),
	}
	result := ar.db.Create(session)
	if result.Error != nil {
		return nil, result.Error
	}
	return session, nil
}

func (ar *AuthenticationRepository) FindActiveSession(sessionID uuid.UUID) (*models.Session, error) {
	var session models.Session
	result := ar.db.Where("id = ?", sessionID).First(&session)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, errs.ErrSessionNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}
	if !session.IsActive {
		return nil, errs.ErrSessionInactive
	}
	return &session, nil
}

func (ar *AuthenticationRepository) TouchSession(sessionID uuid.UUID) error {
	return ar.db.Model(&models.Session{}).
		Where("id = ?", sessionID).
		Update("last_active", time.Now()).Error
}

func (ar *AuthenticationRepository) UpdateProfilePhoto(userID uuid.UUID, photoURL string) error {
	result := ar.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("profile_photo", photoURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

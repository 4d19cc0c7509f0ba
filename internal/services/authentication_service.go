package services

import (
	"stickerDesk/configs"
	"stickerDesk/internal/enums"
	"stickerDesk/internal/errs"
	"stickerDesk/internal/models"
	"stickerDesk/internal/repositories"
	"stickerDesk/internal/utils"
	"stickerDesk/internal/validators"
	"time"

	"github.com/google/uuid"
)

type AuthenticationService struct {
	authRepo *repositories.AuthenticationRepository
	config   *configs.Config
}

func NewAuthenticationService(
	authRepo *repositories.AuthenticationRepository,
	config *configs.Config,
) *AuthenticationService {
	return &AuthenticationService{
		authRepo: authRepo,
		config:   config,
	}
}

func (as *AuthenticationService) Register(user *models.User) (*models.User, []error) {
	var errors []error
	if as.CheckIfUserExists(user.Email) {
		errors = append(errors, errs.ErrUserAlreadyExists)
		return nil, errors
	}
	validationErrs := validators.ValidateUser(user)
	if len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		return nil, errors
	}
	password, err := utils.HashPassword(user.Password)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	user.PasswordHash = password
	return as.authRepo.CreateUser(user)
}

func (as *AuthenticationService) Login(loginData *models.LoginRequestBody) (*models.LoginResponse, []error) {
	var errors []error

	user, loginErrs := as.authRepo.Login(loginData)
	if loginErrs != nil {
		errors = append(errors, loginErrs...)
		return nil, errors
	}

	session, err := as.authRepo.CreateSession(user.ID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	return as.issueTokenPair(user, session.ID)
}

// Refresh validates a refresh-type token against its session and rotates
// the token pair
func (as *AuthenticationService) Refresh(refreshToken string) (*models.LoginResponse, []error) {
	var errors []error

	claims, err := utils.VerifyToken(refreshToken, enums.TOKEN_TYPE_REFRESH, utils.GetJwtKey())
	if err != nil {
		errors = append(errors, errs.ErrInvalidToken)
		return nil, errors
	}

	userID, uidErr := uuid.Parse(claims.UserID)
	sessionID, sidErr := uuid.Parse(claims.SessionID)
	if uidErr != nil || sidErr != nil {
		errors = append(errors, errs.ErrInvalidToken)
		return nil, errors
	}

	session, err := as.authRepo.FindActiveSession(sessionID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	user, err := as.authRepo.FindUserById(userID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	if err := as.authRepo.TouchSession(session.ID); err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	return as.issueTokenPair(user, session.ID)
}

func (as *AuthenticationService) issueTokenPair(user *models.User, sessionID uuid.UUID) (*models.LoginResponse, []error) {
	var errors []error

	accessExpiration := time.Now().Add(
		time.Duration(as.config.Viper.GetInt("jwt.access_expiration_time")) * time.Second)
	accessToken, err := utils.CreateJwtToken(
		user.ID.String(),
		sessionID.String(),
		enums.TOKEN_TYPE_ACCESS,
		utils.GetJwtKey(),
		accessExpiration,
	)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	refreshExpiration := time.Now().Add(
		time.Duration(as.config.Viper.GetInt("jwt.refresh_expiration_time")) * time.Second)
	refreshToken, err := utils.CreateJwtToken(
		user.ID.String(),
		sessionID.String(),
		enums.TOKEN_TYPE_REFRESH,
		utils.GetJwtKey(),
		refreshExpiration,
	)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	return &models.LoginResponse{
		User:         *user.ToUserResponse(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (as *AuthenticationService) CheckIfUserExists(email string) bool {
	return as.authRepo.CheckIfUserExists(email) != nil
}

func (as *AuthenticationService) GetProfile(userID uuid.UUID) (*models.ProfileResponse, error) {
	user, err := as.authRepo.FindUserById(userID)
	if err != nil {
		return nil, err
	}
	return user.ToProfileResponse(), nil
}

func (as *AuthenticationService) UpdateProfilePhoto(userID uuid.UUID, photoURL string) error {
	return as.authRepo.UpdateProfilePhoto(userID, photoURL)
}

package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/app/repositories"
	"github.com/shashiranjanraj/voltkart/pkg/auth"
	"github.com/shashiranjanraj/voltkart/pkg/logger"
)

// LoginInput is the credentials body for both admin and customer login.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupInput registers a new storefront customer.
type SignupInput struct {
	Username string `json:"username"  validate:"required,alpha_dash,between=3,100"`
	Email    string `json:"email"     validate:"required,email"`
	FullName string `json:"full_name" validate:"nullable,max=255"`
	Password string `json:"password"  validate:"required,min=8"`
}

// TokenPair is an access token plus its longer-lived refresh token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"-"` // delivered as an HttpOnly cookie
}

// AuthService issues and refreshes JWT credentials.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Login checks credentials and issues a token pair. Inactive accounts and
// bad passwords both return the same generic message.
func (s *AuthService) Login(input LoginInput) (models.User, TokenPair, error) {
	user, err := s.users.FindByUsername(input.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, TokenPair{}, NewValidationError("username", "Invalid credentials.")
	}
	if err != nil {
		return models.User{}, TokenPair{}, err
	}

	if !user.IsActive || !auth.CheckPassword(user.Password, input.Password) {
		return models.User{}, TokenPair{}, NewValidationError("username", "Invalid credentials.")
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return models.User{}, TokenPair{}, err
	}

	logger.Info("user logged in", "user_id", user.ID, "role", user.Role)
	return user, pair, nil
}

// Signup creates a customer account and logs it in.
func (s *AuthService) Signup(input SignupInput) (models.User, TokenPair, error) {
	taken, err := s.users.UsernameTaken(input.Username)
	if err != nil {
		return models.User{}, TokenPair{}, err
	}
	if taken {
		return models.User{}, TokenPair{}, NewValidationError("username", "The username is already taken.")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return models.User{}, TokenPair{}, err
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		FullName: input.FullName,
		Role:     models.RoleCustomer,
		IsActive: true,
		Password: hash,
	}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, TokenPair{}, err
	}

	pair, err := s.issuePair(user)
	return user, pair, err
}

// Refresh exchanges a valid refresh token for a fresh pair. The account is
// re-checked so a deactivated user cannot keep refreshing.
func (s *AuthService) Refresh(refreshToken string) (models.User, TokenPair, error) {
	claims, err := auth.ValidateToken(refreshToken)
	if err != nil {
		return models.User{}, TokenPair{}, NewValidationError("refresh_token", "Invalid or expired refresh token.")
	}

	user, err := s.users.FindByID(claims.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !user.IsActive) {
		return models.User{}, TokenPair{}, NewValidationError("refresh_token", "Account is no longer active.")
	}
	if err != nil {
		return models.User{}, TokenPair{}, err
	}

	pair, err := s.issuePair(user)
	return user, pair, err
}

func (s *AuthService) issuePair(user models.User) (TokenPair, error) {
	access, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := auth.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/app/repositories"
	"github.com/shashiranjanraj/voltkart/pkg/auth"
	"github.com/shashiranjanraj/voltkart/pkg/orm"
)

// CreateUserInput is the admin create-user body.
type CreateUserInput struct {
	Username string `json:"username"  validate:"required,alpha_dash,between=3,100"`
	Email    string `json:"email"     validate:"required,email"`
	FullName string `json:"full_name" validate:"nullable,max=255"`
	Password string `json:"password"  validate:"required,min=8"`
	Role     string `json:"role"      validate:"nullable,in=admin,customer"`
	IsActive *bool  `json:"is_active"`
}

// UpdateUserInput applies a partial update; nil / empty fields are left alone.
type UpdateUserInput struct {
	Email    string `json:"email"     validate:"nullable,email"`
	FullName string `json:"full_name" validate:"nullable,max=255"`
	Password string `json:"password"  validate:"nullable,min=8"`
	Avatar   string `json:"avatar"    validate:"nullable,max=500"`
	IsActive *bool  `json:"is_active"`
}

// UserService implements admin account management.
type UserService struct {
	users *repositories.UserRepository
}

func NewUserService() *UserService {
	return &UserService{users: repositories.NewUserRepository()}
}

// Customers lists non-admin accounts, one page at a time.
func (s *UserService) Customers(page, perPage int) ([]models.User, orm.Pagination, error) {
	return s.users.Customers(page, perPage)
}

// Get loads one account.
func (s *UserService) Get(id uint) (models.User, error) {
	user, err := s.users.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, &NotFoundError{Resource: "User", ID: fmt.Sprint(id)}
	}
	return user, err
}

// Create adds a new account.
func (s *UserService) Create(input CreateUserInput) (models.User, error) {
	taken, err := s.users.UsernameTaken(input.Username)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, NewValidationError("username", "The username is already taken.")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		FullName: input.FullName,
		Role:     defaultString(input.Role, models.RoleCustomer),
		IsActive: input.IsActive == nil || *input.IsActive,
		Password: hash,
	}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Update applies the non-empty fields of input to an existing account.
func (s *UserService) Update(id uint, input UpdateUserInput) (models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return models.User{}, err
	}

	if input.Email != "" {
		user.Email = input.Email
	}
	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Password != "" {
		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			return models.User{}, err
		}
		user.Password = hash
	}

	return user, s.users.Update(&user)
}

// Delete removes an account.
func (s *UserService) Delete(id uint) error {
	ok, err := s.users.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Resource: "User", ID: fmt.Sprint(id)}
	}
	return nil
}

// Package user implements account registration and management.
package user

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"minimart/internal/models"
	"minimart/internal/repositories"
	"minimart/internal/services/auth"
	"minimart/internal/validation"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidRole  = errors.New("unknown role")
)

// ValidationError reports every invalid field of a request at once.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

type Service interface {
	Create(ctx context.Context, input models.CreateUserInput) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id uint, input models.UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.User, error)
}

type service struct {
	repo repositories.UserRepository
}

// NewService creates a new user service
func NewService(repo repositories.UserRepository) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, input models.CreateUserInput) (*models.User, error) {
	v := validation.New()
	v.Email("email", input.Email)
	v.Password("password", input.Password)
	v.Username("username", input.Username)
	v.Phone("phone_number", input.PhoneNumber)
	v.NonNegative("wallet_balance", input.Balance)
	if !v.Valid() {
		return nil, &ValidationError{Fields: v.Errors}
	}

	role := input.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:         input.Email,
		Password:      hashed,
		Username:      input.Username,
		PhoneNumber:   input.PhoneNumber,
		Role:          role,
		WalletBalance: input.Balance,
	}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *service) Update(ctx context.Context, id uint, input models.UpdateUserInput) (*models.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	v := validation.New()
	if input.Email != nil {
		v.Email("email", *input.Email)
	}
	if input.Password != nil {
		v.Password("password", *input.Password)
	}
	if input.Username != nil {
		v.Username("username", *input.Username)
	}
	if input.PhoneNumber != nil {
		v.Phone("phone_number", *input.PhoneNumber)
	}
	if input.WalletBalance != nil {
		v.NonNegative("wallet_balance", *input.WalletBalance)
	}
	if !v.Valid() {
		return nil, &ValidationError{Fields: v.Errors}
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		hashed, err := auth.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.WalletBalance != nil {
		user.WalletBalance = *input.WalletBalance
	}

	if err := s.repo.Update(user); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	err := s.repo.Delete(id)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *service) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List()
}

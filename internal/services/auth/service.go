// Package auth implements password-based authentication and bearer
// token issuance.
package auth

import (
	"errors"
	"log"

	"minimart/internal/repositories"
	"minimart/internal/utils"
	"minimart/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrUserNotFound       = errors.New("user not found")
	ErrWeakPassword       = errors.New("password too short")
)

// LoginResult carries the issued token and its lifetime in seconds.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type Service interface {
	Login(email, password string) (*LoginResult, error)
	ChangePassword(email, oldPassword, newPassword string) error
}

type service struct {
	userRepo repositories.UserRepository
}

func NewService(userRepo repositories.UserRepository) Service {
	return &service{userRepo: userRepo}
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword verifies a plaintext password against a bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *service) Login(email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !CheckPassword(password, user.Password) {
		log.Printf("login failed for user %d: incorrect password", user.ID)
		return nil, ErrInvalidCredentials
	}

	ttl := utils.TokenTTL()
	token, err := utils.GenerateToken(user.Email, user.Role, ttl)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   int(ttl.Seconds()),
	}, nil
}

func (s *service) ChangePassword(email, oldPassword, newPassword string) error {
	if !validation.IsValidPassword(newPassword) {
		return ErrWeakPassword
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !CheckPassword(oldPassword, user.Password) {
		return ErrInvalidCredentials
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(user.ID, hashed)
}

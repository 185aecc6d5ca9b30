package repositories

import (
	"errors"

	"minimart/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already taken")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	// Create creates a new user in the database
	Create(user *models.User) error

	// GetByID retrieves a user by their ID
	GetByID(id uint) (*models.User, error)

	// GetByEmail retrieves a user by their email address
	GetByEmail(email string) (*models.User, error)

	// Update persists changes to an existing user
	Update(user *models.User) error

	// UpdatePassword updates the user's password hash
	UpdatePassword(userID uint, hashedPassword string) error

	// Delete removes a user; orders and transactions cascade
	Delete(id uint) error

	// List retrieves all users
	List() ([]models.User, error)

	// Exists reports whether a user row with the given id is present
	Exists(id uint) (bool, error)
}

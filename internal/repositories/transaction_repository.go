package repositories

import (
	"errors"

	"minimart/internal/models"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository defines the database operations behind the
// wallet ledger. Balance mutations and ledger writes happen inside
// ExecuteInTransaction so they commit or fail together.
type TransactionRepository interface {
	// GetUserForUpdate loads the user row with a row-level lock. Only
	// meaningful inside ExecuteInTransaction; the lock serializes
	// concurrent balance mutations for the same user.
	GetUserForUpdate(userID uint) (*models.User, error)

	// SaveUser persists an updated user row (balance changes)
	SaveUser(user *models.User) error

	// UserExists reports whether a user row with the given id is present
	UserExists(userID uint) (bool, error)

	// InvalidateUser drops the cached user row. Called after a
	// committed balance mutation so reads do not serve a stale balance.
	InvalidateUser(userID uint)

	// Create inserts a new ledger entry
	Create(tx *models.Transaction) error

	// Save persists changes to an existing ledger entry
	Save(tx *models.Transaction) error

	// GetByID retrieves a ledger entry by id
	GetByID(id uint) (*models.Transaction, error)

	// FirstByUser retrieves the oldest ledger entry of a user
	FirstByUser(userID uint) (*models.Transaction, error)

	// List retrieves all ledger entries
	List() ([]models.Transaction, error)

	// ListByUser retrieves the ledger entries of one user
	ListByUser(userID uint) ([]models.Transaction, error)

	// Delete removes a ledger entry
	Delete(id uint) error

	// ExecuteInTransaction runs fn inside a single database
	// transaction; fn receives a repository bound to that transaction
	ExecuteInTransaction(fn func(TransactionRepository) error) error
}

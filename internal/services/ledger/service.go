package ledger

import (
	"context"
	"errors"

	"minimart/internal/models"
	"minimart/internal/repositories"

	"github.com/google/uuid"
)

// Service is the account ledger: it applies deposit and withdrawal
// transactions against user wallet balances.
type Service interface {
	// Deposit credits the user's wallet. reference tags the entry with
	// an external funding reference; when empty a fresh one is issued.
	Deposit(ctx context.Context, userID uint, amount float64, reference string) (*models.Transaction, error)

	// Withdraw debits the user's wallet; fails with
	// ErrInsufficientBalance when amount exceeds the balance.
	Withdraw(ctx context.Context, userID uint, amount float64) (*models.Transaction, error)

	// UpdateByID corrects an existing ledger entry: the original
	// entry's balance effect is reversed before the new amounts apply.
	UpdateByID(ctx context.Context, txID uint, input models.UpdateTransactionInput) (*models.Transaction, error)

	// UpdateByUser corrects the user's oldest ledger entry.
	UpdateByUser(ctx context.Context, userID uint, input models.UpdateTransactionInput) (*models.Transaction, error)

	GetByID(ctx context.Context, txID uint) (*models.Transaction, error)
	List(ctx context.Context) ([]models.Transaction, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Transaction, error)
	Delete(ctx context.Context, txID uint) error
}

type service struct {
	repo repositories.TransactionRepository
}

// NewService creates a new ledger service
func NewService(repo repositories.TransactionRepository) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo}
}

func (s *service) Deposit(ctx context.Context, userID uint, amount float64, reference string) (*models.Transaction, error) {
	return s.apply(userID, amount, models.TransactionTypeDeposit, reference)
}

func (s *service) Withdraw(ctx context.Context, userID uint, amount float64) (*models.Transaction, error) {
	return s.apply(userID, amount, models.TransactionTypeWithdraw, "")
}

// apply runs one balance mutation and its ledger insert atomically.
func (s *service) apply(userID uint, amount float64, txType, reference string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if reference == "" {
		reference = uuid.NewString()
	}

	var entry *models.Transaction
	err := s.repo.ExecuteInTransaction(func(tx repositories.TransactionRepository) error {
		user, err := tx.GetUserForUpdate(userID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		before := user.WalletBalance
		after, err := applyAmount(before, amount, txType)
		if err != nil {
			return err
		}

		user.WalletBalance = after
		if err := tx.SaveUser(user); err != nil {
			return err
		}

		entry = &models.Transaction{
			UserID:      userID,
			OldAmount:   before,
			NewAmount:   amount,
			TotalAmount: after,
			Type:        txType,
			Reference:   reference,
		}
		return tx.Create(entry)
	})
	if err != nil {
		return nil, err
	}
	s.repo.InvalidateUser(userID)
	return entry, nil
}

func (s *service) UpdateByID(ctx context.Context, txID uint, input models.UpdateTransactionInput) (*models.Transaction, error) {
	var entry *models.Transaction
	err := s.repo.ExecuteInTransaction(func(tx repositories.TransactionRepository) error {
		existing, err := tx.GetByID(txID)
		if err != nil {
			if errors.Is(err, repositories.ErrTransactionNotFound) {
				return ErrTransactionNotFound
			}
			return err
		}
		updated, err := s.correct(tx, existing, input)
		if err != nil {
			return err
		}
		entry = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.repo.InvalidateUser(entry.UserID)
	return entry, nil
}

func (s *service) UpdateByUser(ctx context.Context, userID uint, input models.UpdateTransactionInput) (*models.Transaction, error) {
	var entry *models.Transaction
	err := s.repo.ExecuteInTransaction(func(tx repositories.TransactionRepository) error {
		if _, err := tx.GetUserForUpdate(userID); err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		existing, err := tx.FirstByUser(userID)
		if err != nil {
			if errors.Is(err, repositories.ErrTransactionNotFound) {
				return ErrTransactionNotFound
			}
			return err
		}
		updated, err := s.correct(tx, existing, input)
		if err != nil {
			return err
		}
		entry = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.repo.InvalidateUser(userID)
	return entry, nil
}

// correct reverses the existing entry's balance effect and applies the
// corrected amounts. Runs inside the caller's database transaction.
func (s *service) correct(tx repositories.TransactionRepository, existing *models.Transaction, input models.UpdateTransactionInput) (*models.Transaction, error) {
	if input.UserID != nil && *input.UserID != existing.UserID {
		return nil, ErrUserChangeNotAllowed
	}

	amount := existing.NewAmount
	if input.Amount != nil {
		amount = *input.Amount
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	txType := existing.Type
	if input.Type != nil {
		txType = *input.Type
	}
	if !models.ValidTransactionType(txType) {
		return nil, ErrInvalidType
	}

	user, err := tx.GetUserForUpdate(existing.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	reversed, err := reverseAmount(user.WalletBalance, existing.NewAmount, existing.Type)
	if err != nil {
		return nil, err
	}
	after, err := applyAmount(reversed, amount, txType)
	if err != nil {
		return nil, err
	}

	user.WalletBalance = after
	if err := tx.SaveUser(user); err != nil {
		return nil, err
	}

	existing.OldAmount = reversed
	existing.NewAmount = amount
	existing.TotalAmount = after
	existing.Type = txType
	if err := tx.Save(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *service) GetByID(ctx context.Context, txID uint) (*models.Transaction, error) {
	entry, err := s.repo.GetByID(txID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (s *service) List(ctx context.Context) ([]models.Transaction, error) {
	return s.repo.List()
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]models.Transaction, error) {
	ok, err := s.repo.UserExists(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}
	return s.repo.ListByUser(userID)
}

func (s *service) Delete(ctx context.Context, txID uint) error {
	err := s.repo.Delete(txID)
	if errors.Is(err, repositories.ErrTransactionNotFound) {
		return ErrTransactionNotFound
	}
	return err
}

// applyAmount computes the balance after a ledger entry takes effect.
func applyAmount(balance, amount float64, txType string) (float64, error) {
	switch txType {
	case models.TransactionTypeDeposit:
		return balance + amount, nil
	case models.TransactionTypeWithdraw:
		if amount > balance {
			return 0, ErrInsufficientBalance
		}
		return balance - amount, nil
	default:
		return 0, ErrInvalidType
	}
}

// reverseAmount undoes a previously applied ledger entry.
func reverseAmount(balance, amount float64, txType string) (float64, error) {
	switch txType {
	case models.TransactionTypeDeposit:
		if amount > balance {
			return 0, ErrInsufficientBalance
		}
		return balance - amount, nil
	case models.TransactionTypeWithdraw:
		return balance + amount, nil
	default:
		return 0, ErrInvalidType
	}
}

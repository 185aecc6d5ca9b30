package ledger

import (
	"context"
	"testing"

	"minimart/internal/models"
	"minimart/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory TransactionRepository. ExecuteInTransaction
// snapshots the state and restores it when fn fails, mirroring a
// database rollback.
type fakeRepo struct {
	users       map[uint]*models.User
	txs         map[uint]*models.Transaction
	nextID      uint
	invalidated []uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:  make(map[uint]*models.User),
		txs:    make(map[uint]*models.Transaction),
		nextID: 1,
	}
}

func (f *fakeRepo) addUser(id uint, balance float64) {
	f.users[id] = &models.User{ID: id, WalletBalance: balance}
}

func (f *fakeRepo) GetUserForUpdate(userID uint) (*models.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeRepo) SaveUser(user *models.User) error {
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeRepo) UserExists(userID uint) (bool, error) {
	_, ok := f.users[userID]
	return ok, nil
}

func (f *fakeRepo) InvalidateUser(userID uint) {
	f.invalidated = append(f.invalidated, userID)
}

func (f *fakeRepo) Create(tx *models.Transaction) error {
	tx.ID = f.nextID
	f.nextID++
	copied := *tx
	f.txs[tx.ID] = &copied
	return nil
}

func (f *fakeRepo) Save(tx *models.Transaction) error {
	copied := *tx
	f.txs[tx.ID] = &copied
	return nil
}

func (f *fakeRepo) GetByID(id uint) (*models.Transaction, error) {
	tx, ok := f.txs[id]
	if !ok {
		return nil, repositories.ErrTransactionNotFound
	}
	copied := *tx
	return &copied, nil
}

func (f *fakeRepo) FirstByUser(userID uint) (*models.Transaction, error) {
	var first *models.Transaction
	for _, tx := range f.txs {
		if tx.UserID != userID {
			continue
		}
		if first == nil || tx.ID < first.ID {
			first = tx
		}
	}
	if first == nil {
		return nil, repositories.ErrTransactionNotFound
	}
	copied := *first
	return &copied, nil
}

func (f *fakeRepo) List() ([]models.Transaction, error) {
	var out []models.Transaction
	for id := uint(1); id < f.nextID; id++ {
		if tx, ok := f.txs[id]; ok {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByUser(userID uint) ([]models.Transaction, error) {
	var out []models.Transaction
	for id := uint(1); id < f.nextID; id++ {
		if tx, ok := f.txs[id]; ok && tx.UserID == userID {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(id uint) error {
	if _, ok := f.txs[id]; !ok {
		return repositories.ErrTransactionNotFound
	}
	delete(f.txs, id)
	return nil
}

func (f *fakeRepo) ExecuteInTransaction(fn func(repositories.TransactionRepository) error) error {
	usersBackup := make(map[uint]*models.User, len(f.users))
	for id, u := range f.users {
		copied := *u
		usersBackup[id] = &copied
	}
	txsBackup := make(map[uint]*models.Transaction, len(f.txs))
	for id, tx := range f.txs {
		copied := *tx
		txsBackup[id] = &copied
	}
	idBackup := f.nextID

	if err := fn(f); err != nil {
		f.users = usersBackup
		f.txs = txsBackup
		f.nextID = idBackup
		return err
	}
	return nil
}

func (f *fakeRepo) balance(userID uint) float64 {
	return f.users[userID].WalletBalance
}

func TestDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("credits balance and records entry", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addUser(1, 50)
		svc := NewService(repo)

		entry, err := svc.Deposit(ctx, 1, 100, "")
		require.NoError(t, err)

		assert.Equal(t, float64(150), repo.balance(1))
		assert.Equal(t, models.TransactionTypeDeposit, entry.Type)
		assert.Equal(t, float64(50), entry.OldAmount)
		assert.Equal(t, float64(100), entry.NewAmount)
		assert.Equal(t, float64(150), entry.TotalAmount)
		assert.NotEmpty(t, entry.Reference)
	})

	t.Run("keeps supplied funding reference", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addUser(1, 0)
		svc := NewService(repo)

		entry, err := svc.Deposit(ctx, 1, 25, "tok_visa")
		require.NoError(t, err)
		assert.Equal(t, "tok_visa", entry.Reference)
	})

	t.Run("unknown user creates no entry", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo)

		_, err := svc.Deposit(ctx, 99, 100, "")
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Empty(t, repo.txs)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addUser(1, 0)
		svc := NewService(repo)

		_, err := svc.Deposit(ctx, 1, 0, "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
		_, err = svc.Deposit(ctx, 1, -10, "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("debits balance within funds", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addUser(1, 100)
		svc := NewService(repo)

		entry, err := svc.Withdraw(ctx, 1, 40)
		require.NoError(t, err)

		assert.Equal(t, float64(60), repo.balance(1))
		assert.Equal(t, models.TransactionTypeWithdraw, entry.Type)
		assert.Equal(t, float64(100), entry.OldAmount)
		assert.Equal(t, float64(40), entry.NewAmount)
		assert.Equal(t, float64(60), entry.TotalAmount)
	})

	t.Run("overdraft rejected and balance untouched", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addUser(1, 100)
		svc := NewService(repo)

		_, err := svc.Withdraw(ctx, 1, 150)
		assert.ErrorIs(t, err, ErrInsufficientBalance)
		assert.Equal(t, float64(100), repo.balance(1))
		assert.Empty(t, repo.txs)
	})

	t.Run("exact balance drains to zero", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addUser(1, 100)
		svc := NewService(repo)

		entry, err := svc.Withdraw(ctx, 1, 100)
		require.NoError(t, err)
		assert.Equal(t, float64(0), repo.balance(1))
		assert.Equal(t, float64(0), entry.TotalAmount)
	})
}

// Deposit 100, fail to withdraw 150, then drain the account.
func TestWalletScenario(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	repo.addUser(1, 0)
	svc := NewService(repo)

	_, err := svc.Deposit(ctx, 1, 100, "")
	require.NoError(t, err)
	assert.Equal(t, float64(100), repo.balance(1))

	_, err = svc.Withdraw(ctx, 1, 150)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, float64(100), repo.balance(1))

	_, err = svc.Withdraw(ctx, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, float64(0), repo.balance(1))

	history, err := svc.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestUpdateByID(t *testing.T) {
	ctx := context.Background()

	t.Run("correction reverses before reapplying", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addUser(1, 0)
		svc := NewService(repo)

		entry, err := svc.Deposit(ctx, 1, 100, "")
		require.NoError(t, err)

		// Correct the deposit from 100 down to 60. The original 100 is
		// reversed first, so the balance ends at 60, not 160.
		newAmount := 60.0
		updated, err := svc.UpdateByID(ctx, entry.ID, models.UpdateTransactionInput{Amount: &newAmount})
		require.NoError(t, err)

		assert.Equal(t, float64(60), repo.balance(1))
		assert.Equal(t, float64(0), updated.OldAmount)
		assert.Equal(t, float64(60), updated.NewAmount)
		assert.Equal(t, float64(60), updated.TotalAmount)
	})

	t.Run("correction to overdrawing withdrawal rejected", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addUser(1, 0)
		svc := NewService(repo)

		entry, err := svc.Deposit(ctx, 1, 100, "")
		require.NoError(t, err)

		withdraw := models.TransactionTypeWithdraw
		amount := 50.0
		// Flipping the only deposit into a withdrawal would leave the
		// wallet negative once the deposit is reversed.
		_, err = svc.UpdateByID(ctx, entry.ID, models.UpdateTransactionInput{Type: &withdraw, Amount: &amount})
		assert.ErrorIs(t, err, ErrInsufficientBalance)
		assert.Equal(t, float64(100), repo.balance(1))
	})

	t.Run("repeated corrections do not compound", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addUser(1, 0)
		svc := NewService(repo)

		entry, err := svc.Deposit(ctx, 1, 100, "")
		require.NoError(t, err)

		amount := 80.0
		for i := 0; i < 3; i++ {
			_, err = svc.UpdateByID(ctx, entry.ID, models.UpdateTransactionInput{Amount: &amount})
			require.NoError(t, err)
		}
		assert.Equal(t, float64(80), repo.balance(1))
	})

	t.Run("reassigning the entry to another user rejected", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addUser(1, 0)
		repo.addUser(2, 0)
		svc := NewService(repo)

		entry, err := svc.Deposit(ctx, 1, 100, "")
		require.NoError(t, err)

		other := uint(2)
		_, err = svc.UpdateByID(ctx, entry.ID, models.UpdateTransactionInput{UserID: &other})
		assert.ErrorIs(t, err, ErrUserChangeNotAllowed)
	})

	t.Run("missing entry", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo)

		_, err := svc.UpdateByID(ctx, 42, models.UpdateTransactionInput{})
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}

// A committed balance mutation must drop the cached user row so
// follow-up reads see the new balance; a rolled-back one must not.
func TestBalanceWritesDropCachedUser(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	repo.addUser(1, 0)
	svc := NewService(repo)

	entry, err := svc.Deposit(ctx, 1, 100, "")
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, repo.invalidated)

	_, err = svc.Withdraw(ctx, 1, 500)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, []uint{1}, repo.invalidated)

	amount := 80.0
	_, err = svc.UpdateByID(ctx, entry.ID, models.UpdateTransactionInput{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 1}, repo.invalidated)

	_, err = svc.UpdateByUser(ctx, 1, models.UpdateTransactionInput{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 1, 1}, repo.invalidated)
}

func TestUpdateByUser(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	repo.addUser(1, 0)
	svc := NewService(repo)

	first, err := svc.Deposit(ctx, 1, 100, "")
	require.NoError(t, err)
	_, err = svc.Deposit(ctx, 1, 50, "")
	require.NoError(t, err)

	amount := 30.0
	updated, err := svc.UpdateByUser(ctx, 1, models.UpdateTransactionInput{Amount: &amount})
	require.NoError(t, err)

	assert.Equal(t, first.ID, updated.ID)
	// 150 on the books, minus the reversed 100, plus the corrected 30.
	assert.Equal(t, float64(80), repo.balance(1))

	_, err = svc.UpdateByUser(ctx, 9, models.UpdateTransactionInput{Amount: &amount})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListByUser(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.ListByUser(ctx, 5)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	repo.addUser(1, 0)
	svc := NewService(repo)

	entry, err := svc.Deposit(ctx, 1, 10, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, entry.ID))
	assert.ErrorIs(t, svc.Delete(ctx, entry.ID), ErrTransactionNotFound)
}

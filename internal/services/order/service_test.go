package order

import (
	"context"
	"testing"
	"time"

	"minimart/internal/models"
	"minimart/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) CreateOrder(o *models.Order) error {
	args := m.Called(o)
	return args.Error(0)
}

func (m *MockOrderRepo) GetOrderByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepo) UpdateOrder(o *models.Order) error {
	args := m.Called(o)
	return args.Error(0)
}

func (m *MockOrderRepo) DeleteOrder(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockOrderRepo) ListOrders() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepo) ListOrdersByUser(userID uint) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepo) ListOrdersByDateRange(from, to time.Time) ([]models.Order, error) {
	args := m.Called(from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepo) OrderExists(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepo) CreateDetail(d *models.OrderDetail) error {
	args := m.Called(d)
	return args.Error(0)
}

func (m *MockOrderRepo) GetDetailByID(id uint) (*models.OrderDetail, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderDetail), args.Error(1)
}

func (m *MockOrderRepo) UpdateDetail(d *models.OrderDetail) error {
	args := m.Called(d)
	return args.Error(0)
}

func (m *MockOrderRepo) DeleteDetail(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockOrderRepo) ListDetails() ([]models.OrderDetail, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderDetail), args.Error(1)
}

func (m *MockOrderRepo) ListDetailsByOrder(orderID uint) ([]models.OrderDetail, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderDetail), args.Error(1)
}

// stubUsers answers Exists from a fixed id set; the rest of the
// interface is unused here.
type stubUsers struct {
	repositories.UserRepository
	ids map[uint]bool
}

func (s *stubUsers) Exists(id uint) (bool, error) { return s.ids[id], nil }

// stubCatalog answers GetProductByID from a fixed id set.
type stubCatalog struct {
	repositories.CatalogRepository
	ids map[uint]bool
}

func (s *stubCatalog) GetProductByID(id uint) (*models.Product, error) {
	if !s.ids[id] {
		return nil, repositories.ErrProductNotFound
	}
	return &models.Product{ID: id}, nil
}

func newService(repo *MockOrderRepo, userIDs, productIDs []uint) Service {
	users := &stubUsers{ids: make(map[uint]bool)}
	for _, id := range userIDs {
		users.ids[id] = true
	}
	catalog := &stubCatalog{ids: make(map[uint]bool)}
	for _, id := range productIDs {
		catalog.ids[id] = true
	}
	return NewService(repo, users, catalog)
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("success with default order date", func(t *testing.T) {
		repo := new(MockOrderRepo)
		svc := newService(repo, []uint{1}, nil)
		repo.On("CreateOrder", mock.AnythingOfType("*models.Order")).Return(nil)

		order, err := svc.Create(ctx, models.CreateOrderInput{UserID: 1, TotalAmount: 50000})
		require.NoError(t, err)
		assert.False(t, order.OrderDate.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockOrderRepo)
		svc := newService(repo, nil, nil)

		_, err := svc.Create(ctx, models.CreateOrderInput{UserID: 9})
		assert.ErrorIs(t, err, ErrUserNotFound)
		repo.AssertNotCalled(t, "CreateOrder", mock.Anything)
	})
}

func TestUpdateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		repo := new(MockOrderRepo)
		svc := newService(repo, []uint{1, 2}, nil)
		repo.On("GetOrderByID", uint(1)).Return(&models.Order{ID: 1, UserID: 1, TotalAmount: 100}, nil)
		repo.On("UpdateOrder", mock.AnythingOfType("*models.Order")).Return(nil)

		total := 250.0
		order, err := svc.Update(ctx, 1, models.UpdateOrderInput{TotalAmount: &total})
		require.NoError(t, err)
		assert.Equal(t, 250.0, order.TotalAmount)
		assert.Equal(t, uint(1), order.UserID)
	})

	t.Run("reassign to unknown user rejected", func(t *testing.T) {
		repo := new(MockOrderRepo)
		svc := newService(repo, []uint{1}, nil)
		repo.On("GetOrderByID", uint(1)).Return(&models.Order{ID: 1, UserID: 1}, nil)

		target := uint(9)
		_, err := svc.Update(ctx, 1, models.UpdateOrderInput{UserID: &target})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("missing order", func(t *testing.T) {
		repo := new(MockOrderRepo)
		svc := newService(repo, nil, nil)
		repo.On("GetOrderByID", uint(9)).Return(nil, repositories.ErrOrderNotFound)

		_, err := svc.Update(ctx, 9, models.UpdateOrderInput{})
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestListByDateRange(t *testing.T) {
	ctx := context.Background()

	t.Run("inverted range rejected", func(t *testing.T) {
		repo := new(MockOrderRepo)
		svc := newService(repo, nil, nil)

		from := time.Now()
		to := from.Add(-time.Hour)
		_, err := svc.ListByDateRange(ctx, from, to)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("single day queries a half-open window", func(t *testing.T) {
		repo := new(MockOrderRepo)
		svc := newService(repo, nil, nil)

		day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
		// The end bound is next midnight, exclusive, so an order
		// stamped exactly there counts only for the next day.
		repo.On("ListOrdersByDateRange", day, day.AddDate(0, 0, 1)).Return([]models.Order{{ID: 1}}, nil)

		orders, err := svc.ListByDay(ctx, day)
		require.NoError(t, err)
		assert.Len(t, orders, 1)
		repo.AssertExpectations(t)
	})

	t.Run("open end defaults to now", func(t *testing.T) {
		repo := new(MockOrderRepo)
		svc := newService(repo, nil, nil)
		repo.On("ListOrdersByDateRange", mock.Anything, mock.Anything).Return([]models.Order{{ID: 1}}, nil)

		from := time.Now().Add(-24 * time.Hour)
		orders, err := svc.ListByDateRange(ctx, from, time.Time{})
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})
}

func TestCreateDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(MockOrderRepo)
		svc := newService(repo, nil, []uint{7})
		repo.On("OrderExists", uint(1)).Return(true, nil)
		repo.On("CreateDetail", mock.AnythingOfType("*models.OrderDetail")).Return(nil)

		detail, err := svc.CreateDetail(ctx, models.CreateOrderDetailInput{
			OrderID: 1, ProductID: 7, Quantity: 2, UnitPrice: 25000,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, detail.Quantity)
	})

	t.Run("unknown order", func(t *testing.T) {
		repo := new(MockOrderRepo)
		svc := newService(repo, nil, []uint{7})
		repo.On("OrderExists", uint(9)).Return(false, nil)

		_, err := svc.CreateDetail(ctx, models.CreateOrderDetailInput{OrderID: 9, ProductID: 7, Quantity: 1})
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("unknown product", func(t *testing.T) {
		repo := new(MockOrderRepo)
		svc := newService(repo, nil, nil)
		repo.On("OrderExists", uint(1)).Return(true, nil)

		_, err := svc.CreateDetail(ctx, models.CreateOrderDetailInput{OrderID: 1, ProductID: 9, Quantity: 1})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		repo := new(MockOrderRepo)
		svc := newService(repo, nil, nil)

		_, err := svc.CreateDetail(ctx, models.CreateOrderDetailInput{OrderID: 1, ProductID: 7, Quantity: 0})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestUpdateDetail(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOrderRepo)
	svc := newService(repo, nil, []uint{7, 8})
	repo.On("GetDetailByID", uint(1)).Return(&models.OrderDetail{ID: 1, OrderID: 1, ProductID: 7, Quantity: 2, UnitPrice: 100}, nil)
	repo.On("UpdateDetail", mock.AnythingOfType("*models.OrderDetail")).Return(nil)

	product := uint(8)
	qty := 5
	detail, err := svc.UpdateDetail(ctx, 1, models.UpdateOrderDetailInput{ProductID: &product, Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, uint(8), detail.ProductID)
	assert.Equal(t, 5, detail.Quantity)
	assert.Equal(t, 100.0, detail.UnitPrice)
}

func TestDeleteOrder(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOrderRepo)
	svc := newService(repo, nil, nil)
	repo.On("DeleteOrder", uint(9)).Return(repositories.ErrOrderNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 9), ErrOrderNotFound)
}

func TestListDetailsByOrder(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOrderRepo)
	svc := newService(repo, nil, nil)
	repo.On("OrderExists", uint(9)).Return(false, nil)

	_, err := svc.ListDetailsByOrder(ctx, 9)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

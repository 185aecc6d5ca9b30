package order

import (
	"context"
	"errors"
	"time"

	"minimart/internal/models"
	"minimart/internal/repositories"
)

// Service manages customer orders and their line items.
type Service interface {
	Create(ctx context.Context, input models.CreateOrderInput) (*models.Order, error)
	Get(ctx context.Context, id uint) (*models.Order, error)
	Update(ctx context.Context, id uint, input models.UpdateOrderInput) (*models.Order, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Order, error)

	// ListByDateRange returns orders placed in the half-open window
	// [from, to). A zero `to` means up to now.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]models.Order, error)

	// ListByDay returns orders placed on the calendar day starting at
	// day. An order stamped midnight of the next day belongs to the
	// next day.
	ListByDay(ctx context.Context, day time.Time) ([]models.Order, error)

	CreateDetail(ctx context.Context, input models.CreateOrderDetailInput) (*models.OrderDetail, error)
	GetDetail(ctx context.Context, id uint) (*models.OrderDetail, error)
	UpdateDetail(ctx context.Context, id uint, input models.UpdateOrderDetailInput) (*models.OrderDetail, error)
	DeleteDetail(ctx context.Context, id uint) error
	ListDetails(ctx context.Context) ([]models.OrderDetail, error)
	ListDetailsByOrder(ctx context.Context, orderID uint) ([]models.OrderDetail, error)
}

type service struct {
	repo    repositories.OrderRepository
	users   repositories.UserRepository
	catalog repositories.CatalogRepository
}

// NewService creates a new order service
func NewService(repo repositories.OrderRepository, users repositories.UserRepository, catalog repositories.CatalogRepository) Service {
	if repo == nil || users == nil || catalog == nil {
		panic("repo, users and catalog are required")
	}
	return &service{repo: repo, users: users, catalog: catalog}
}

func (s *service) Create(ctx context.Context, input models.CreateOrderInput) (*models.Order, error) {
	if err := s.checkUser(input.UserID); err != nil {
		return nil, err
	}

	orderDate := input.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}
	order := &models.Order{
		UserID:      input.UserID,
		TotalAmount: input.TotalAmount,
		OrderDate:   orderDate,
	}
	if err := s.repo.CreateOrder(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *service) Get(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.repo.GetOrderByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *service) Update(ctx context.Context, id uint, input models.UpdateOrderInput) (*models.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.UserID != nil {
		if err := s.checkUser(*input.UserID); err != nil {
			return nil, err
		}
		order.UserID = *input.UserID
	}
	if input.TotalAmount != nil {
		order.TotalAmount = *input.TotalAmount
	}
	if err := s.repo.UpdateOrder(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	err := s.repo.DeleteOrder(id)
	if errors.Is(err, repositories.ErrOrderNotFound) {
		return ErrOrderNotFound
	}
	return err
}

func (s *service) List(ctx context.Context) ([]models.Order, error) {
	return s.repo.ListOrders()
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	if err := s.checkUser(userID); err != nil {
		return nil, err
	}
	return s.repo.ListOrdersByUser(userID)
}

func (s *service) ListByDateRange(ctx context.Context, from, to time.Time) ([]models.Order, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.After(to) {
		return nil, ErrInvalidDateRange
	}
	return s.repo.ListOrdersByDateRange(from, to)
}

func (s *service) ListByDay(ctx context.Context, day time.Time) ([]models.Order, error) {
	return s.repo.ListOrdersByDateRange(day, day.AddDate(0, 0, 1))
}

func (s *service) CreateDetail(ctx context.Context, input models.CreateOrderDetailInput) (*models.OrderDetail, error) {
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if err := s.checkOrder(input.OrderID); err != nil {
		return nil, err
	}
	if err := s.checkProduct(input.ProductID); err != nil {
		return nil, err
	}

	detail := &models.OrderDetail{
		OrderID:   input.OrderID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		UnitPrice: input.UnitPrice,
	}
	if err := s.repo.CreateDetail(detail); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *service) GetDetail(ctx context.Context, id uint) (*models.OrderDetail, error) {
	detail, err := s.repo.GetDetailByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderDetailNotFound) {
			return nil, ErrDetailNotFound
		}
		return nil, err
	}
	return detail, nil
}

func (s *service) UpdateDetail(ctx context.Context, id uint, input models.UpdateOrderDetailInput) (*models.OrderDetail, error) {
	detail, err := s.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.ProductID != nil {
		if err := s.checkProduct(*input.ProductID); err != nil {
			return nil, err
		}
		detail.ProductID = *input.ProductID
	}
	if input.Quantity != nil {
		if *input.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		detail.Quantity = *input.Quantity
	}
	if input.UnitPrice != nil {
		detail.UnitPrice = *input.UnitPrice
	}
	if err := s.repo.UpdateDetail(detail); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *service) DeleteDetail(ctx context.Context, id uint) error {
	err := s.repo.DeleteDetail(id)
	if errors.Is(err, repositories.ErrOrderDetailNotFound) {
		return ErrDetailNotFound
	}
	return err
}

func (s *service) ListDetails(ctx context.Context) ([]models.OrderDetail, error) {
	return s.repo.ListDetails()
}

func (s *service) ListDetailsByOrder(ctx context.Context, orderID uint) ([]models.OrderDetail, error) {
	if err := s.checkOrder(orderID); err != nil {
		return nil, err
	}
	return s.repo.ListDetailsByOrder(orderID)
}

func (s *service) checkUser(id uint) error {
	ok, err := s.users.Exists(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}

func (s *service) checkOrder(id uint) error {
	ok, err := s.repo.OrderExists(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOrderNotFound
	}
	return nil
}

func (s *service) checkProduct(id uint) error {
	if _, err := s.catalog.GetProductByID(id); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

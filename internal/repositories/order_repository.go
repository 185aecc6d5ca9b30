package repositories

import (
	"errors"
	"time"

	"minimart/internal/models"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderDetailNotFound = errors.New("order detail not found")
)

// OrderRepository defines the database operations for orders and
// order line items.
type OrderRepository interface {
	// Orders
	CreateOrder(o *models.Order) error
	GetOrderByID(id uint) (*models.Order, error)
	UpdateOrder(o *models.Order) error
	DeleteOrder(id uint) error
	ListOrders() ([]models.Order, error)
	ListOrdersByUser(userID uint) ([]models.Order, error)
	// ListOrdersByDateRange returns orders with
	// from <= order_date < to.
	ListOrdersByDateRange(from, to time.Time) ([]models.Order, error)
	OrderExists(id uint) (bool, error)

	// Order details
	CreateDetail(d *models.OrderDetail) error
	GetDetailByID(id uint) (*models.OrderDetail, error)
	UpdateDetail(d *models.OrderDetail) error
	DeleteDetail(id uint) error
	ListDetails() ([]models.OrderDetail, error)
	ListDetailsByOrder(orderID uint) ([]models.OrderDetail, error)
}

package repositories

import (
	"errors"
	"fmt"
	"time"

	"minimart/internal/models"

	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new instance of OrderRepository
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(o *models.Order) error {
	if err := r.db.Create(o).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *orderRepository) GetOrderByID(id uint) (*models.Order, error) {
	var o models.Order
	if err := r.db.First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &o, nil
}

func (r *orderRepository) UpdateOrder(o *models.Order) error {
	if err := r.db.Save(o).Error; err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

func (r *orderRepository) DeleteOrder(id uint) error {
	result := r.db.Select("Details").Delete(&models.Order{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *orderRepository) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) ListOrdersByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) ListOrdersByDateRange(from, to time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("order_date >= ? AND order_date < ?", from, to).
		Order("order_date").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders by date: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) OrderExists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check order: %w", err)
	}
	return count > 0, nil
}

// Order details

func (r *orderRepository) CreateDetail(d *models.OrderDetail) error {
	if err := r.db.Create(d).Error; err != nil {
		return fmt.Errorf("failed to create order detail: %w", err)
	}
	return nil
}

func (r *orderRepository) GetDetailByID(id uint) (*models.OrderDetail, error) {
	var d models.OrderDetail
	if err := r.db.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderDetailNotFound
		}
		return nil, fmt.Errorf("failed to get order detail: %w", err)
	}
	return &d, nil
}

func (r *orderRepository) UpdateDetail(d *models.OrderDetail) error {
	if err := r.db.Save(d).Error; err != nil {
		return fmt.Errorf("failed to update order detail: %w", err)
	}
	return nil
}

func (r *orderRepository) DeleteDetail(id uint) error {
	result := r.db.Delete(&models.OrderDetail{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order detail: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrOrderDetailNotFound
	}
	return nil
}

func (r *orderRepository) ListDetails() ([]models.OrderDetail, error) {
	var details []models.OrderDetail
	if err := r.db.Order("id").Find(&details).Error; err != nil {
		return nil, fmt.Errorf("failed to list order details: %w", err)
	}
	return details, nil
}

func (r *orderRepository) ListDetailsByOrder(orderID uint) ([]models.OrderDetail, error) {
	var details []models.OrderDetail
	if err := r.db.Where("order_id = ?", orderID).Order("id").Find(&details).Error; err != nil {
		return nil, fmt.Errorf("failed to list order details: %w", err)
	}
	return details, nil
}

package models

import (
	"time"
)

type Order struct {
	ID          uint          `gorm:"primarykey" json:"id"`
	UserID      uint          `gorm:"index;not null" json:"user_id"`
	TotalAmount float64       `gorm:"not null" json:"total_amount"`
	OrderDate   time.Time     `json:"order_date"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Details     []OrderDetail `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type OrderDetail struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	OrderID   uint      `gorm:"index;not null" json:"order_id"`
	ProductID uint      `gorm:"not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitPrice float64   `gorm:"not null" json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OrderDetail) TableName() string { return "order_detail" }

type CreateOrderInput struct {
	UserID      uint      `json:"user_id"`
	TotalAmount float64   `json:"total_amount"`
	OrderDate   time.Time `json:"order_date"`
}

type UpdateOrderInput struct {
	UserID      *uint    `json:"user_id"`
	TotalAmount *float64 `json:"total_amount"`
}

type CreateOrderDetailInput struct {
	OrderID   uint    `json:"order_id"`
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type UpdateOrderDetailInput struct {
	ProductID *uint    `json:"product_id"`
	Quantity  *int     `json:"quantity"`
	UnitPrice *float64 `json:"unit_price"`
}

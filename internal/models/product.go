package models

import (
	"time"
)

type Product struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Name          string    `gorm:"index;not null" json:"name"`
	Image         string    `gorm:"not null" json:"image"`
	Price         float64   `gorm:"index;not null" json:"price"`
	DiscountPrice float64   `gorm:"index" json:"discount_price"`
	Quantity      int       `json:"quantity"`
	Description   string    `gorm:"not null" json:"description"`
	Supplier      string    `gorm:"index;not null" json:"supplier"`
	GroupID       uint      `gorm:"not null" json:"group_id"`
	CategoryID    uint      `gorm:"not null" json:"category_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ProductGroup struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Categories []ProductCategory `gorm:"foreignKey:GroupID" json:"-"`
	Products   []Product         `gorm:"foreignKey:GroupID" json:"-"`
}

func (ProductGroup) TableName() string { return "product_group" }

type ProductCategory struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"uniqueIndex" json:"name"`
	GroupID   uint      `gorm:"not null" json:"group_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

func (ProductCategory) TableName() string { return "product_category" }

// CreateProductInput is the request body for creating a product.
type CreateProductInput struct {
	Name          string  `json:"name"`
	Image         string  `json:"image"`
	Price         float64 `json:"price"`
	DiscountPrice float64 `json:"discount_price"`
	Quantity      int     `json:"quantity"`
	Description   string  `json:"description"`
	Supplier      string  `json:"supplier"`
	GroupID       uint    `json:"group_id"`
	CategoryID    uint    `json:"category_id"`
}

// UpdateProductInput applies only the fields that are present.
type UpdateProductInput struct {
	Name          *string  `json:"name"`
	Image         *string  `json:"image"`
	Price         *float64 `json:"price"`
	DiscountPrice *float64 `json:"discount_price"`
	Quantity      *int     `json:"quantity"`
	Description   *string  `json:"description"`
	Supplier      *string  `json:"supplier"`
}

// CreateGroupInput is the request body for creating a product group.
type CreateGroupInput struct {
	Name string `json:"name"`
}

// CreateCategoryInput is the request body for creating a product
// category inside a group.
type CreateCategoryInput struct {
	Name    string `json:"name"`
	GroupID uint   `json:"group_id"`
}

// UpdateCategoryInput applies only the fields that are present.
type UpdateCategoryInput struct {
	Name    *string `json:"name"`
	GroupID *uint   `json:"group_id"`
}

// ProductSearchInput holds the conjunctive search filters. Nil fields
// are not applied.
type ProductSearchInput struct {
	GroupName    *string  `json:"group_name"`
	CategoryName *string  `json:"category_name"`
	ProductName  *string  `json:"product_name"`
	Supplier     *string  `json:"supplier"`
	MinPrice     *float64 `json:"min_price"`
	MaxPrice     *float64 `json:"max_price"`
	HasDiscount  *bool    `json:"discount_price"`
	InStock      *bool    `json:"quantity"`
}

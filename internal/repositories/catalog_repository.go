package repositories

import (
	"errors"

	"minimart/internal/models"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrGroupNotFound    = errors.New("product group not found")
	ErrCategoryNotFound = errors.New("product category not found")
	ErrDuplicateName    = errors.New("name already taken")
)

// ProductSearchRow is a product joined with its group and category
// names, as needed by the search filters.
type ProductSearchRow struct {
	models.Product
	GroupName    string
	CategoryName string
}

// SearchQuery holds the filters the database can apply directly.
// Name/supplier/group/category matching is accent-insensitive and is
// applied by the catalog service on the returned rows.
type SearchQuery struct {
	MinPrice    *float64
	MaxPrice    *float64
	HasDiscount bool
	InStock     bool
}

// CatalogRepository defines the database operations for products,
// product groups and product categories.
type CatalogRepository interface {
	// Products
	CreateProduct(p *models.Product) error
	GetProductByID(id uint) (*models.Product, error)
	UpdateProduct(p *models.Product) error
	DeleteProduct(id uint) error
	ListProducts() ([]models.Product, error)
	SearchProducts(q SearchQuery) ([]ProductSearchRow, error)

	// Groups
	CreateGroup(g *models.ProductGroup) error
	GetGroupByID(id uint) (*models.ProductGroup, error)
	UpdateGroup(g *models.ProductGroup) error
	DeleteGroup(id uint) error
	ListGroups() ([]models.ProductGroup, error)
	GroupExists(id uint) (bool, error)

	// Categories
	CreateCategory(c *models.ProductCategory) error
	GetCategoryByID(id uint) (*models.ProductCategory, error)
	UpdateCategory(c *models.ProductCategory) error
	DeleteCategory(id uint) error
	ListCategories() ([]models.ProductCategory, error)
	CategoryExists(id uint) (bool, error)
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"

	"minimart/internal/models"
	"minimart/internal/repositories/cache"

	"gorm.io/gorm"
)

type catalogRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewCatalogRepository creates a new instance of CatalogRepository
func NewCatalogRepository(db *gorm.DB, cacheSvc *cache.CacheService) CatalogRepository {
	return &catalogRepository{db: db, cache: cacheSvc}
}

// Products

func (r *catalogRepository) CreateProduct(p *models.Product) error {
	if err := r.db.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *catalogRepository) GetProductByID(id uint) (*models.Product, error) {
	key := r.cache.GenerateKey("product", "id", id)
	var cached models.Product
	if err := r.cache.Get(context.Background(), key, &cached); err == nil {
		return &cached, nil
	}

	var p models.Product
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if err := r.cache.Set(context.Background(), key, &p); err != nil {
		log.Printf("failed to cache product %d: %v", p.ID, err)
	}
	return &p, nil
}

func (r *catalogRepository) UpdateProduct(p *models.Product) error {
	if err := r.db.Save(p).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	r.invalidateProduct(p.ID)
	return nil
}

func (r *catalogRepository) DeleteProduct(id uint) error {
	result := r.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	r.invalidateProduct(id)
	return nil
}

func (r *catalogRepository) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (r *catalogRepository) SearchProducts(q SearchQuery) ([]ProductSearchRow, error) {
	query := r.db.Model(&models.Product{}).
		Select("products.*, product_group.name AS group_name, product_category.name AS category_name").
		Joins("JOIN product_group ON product_group.id = products.group_id").
		Joins("JOIN product_category ON product_category.id = products.category_id")

	if q.MinPrice != nil {
		query = query.Where("products.price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		query = query.Where("products.price <= ?", *q.MaxPrice)
	}
	if q.HasDiscount {
		query = query.Where("products.discount_price > 0")
	}
	if q.InStock {
		query = query.Where("products.quantity > 0")
	}

	var rows []ProductSearchRow
	if err := query.Order("products.id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return rows, nil
}

func (r *catalogRepository) invalidateProduct(id uint) {
	key := r.cache.GenerateKey("product", "id", id)
	if err := r.cache.Delete(context.Background(), key); err != nil {
		log.Printf("failed to invalidate product cache %d: %v", id, err)
	}
}

// Groups

func (r *catalogRepository) CreateGroup(g *models.ProductGroup) error {
	if err := r.db.Create(g).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateName
		}
		return fmt.Errorf("failed to create product group: %w", err)
	}
	return nil
}

func (r *catalogRepository) GetGroupByID(id uint) (*models.ProductGroup, error) {
	var g models.ProductGroup
	if err := r.db.First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get product group: %w", err)
	}
	return &g, nil
}

func (r *catalogRepository) UpdateGroup(g *models.ProductGroup) error {
	if err := r.db.Save(g).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateName
		}
		return fmt.Errorf("failed to update product group: %w", err)
	}
	return nil
}

func (r *catalogRepository) DeleteGroup(id uint) error {
	result := r.db.Delete(&models.ProductGroup{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product group: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGroupNotFound
	}
	return nil
}

func (r *catalogRepository) ListGroups() ([]models.ProductGroup, error) {
	var groups []models.ProductGroup
	if err := r.db.Order("id").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("failed to list product groups: %w", err)
	}
	return groups, nil
}

func (r *catalogRepository) GroupExists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.ProductGroup{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check product group: %w", err)
	}
	return count > 0, nil
}

// Categories

func (r *catalogRepository) CreateCategory(c *models.ProductCategory) error {
	if err := r.db.Create(c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateName
		}
		return fmt.Errorf("failed to create product category: %w", err)
	}
	return nil
}

func (r *catalogRepository) GetCategoryByID(id uint) (*models.ProductCategory, error) {
	var c models.ProductCategory
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get product category: %w", err)
	}
	return &c, nil
}

func (r *catalogRepository) UpdateCategory(c *models.ProductCategory) error {
	if err := r.db.Save(c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateName
		}
		return fmt.Errorf("failed to update product category: %w", err)
	}
	return nil
}

func (r *catalogRepository) DeleteCategory(id uint) error {
	result := r.db.Delete(&models.ProductCategory{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *catalogRepository) ListCategories() ([]models.ProductCategory, error) {
	var categories []models.ProductCategory
	if err := r.db.Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list product categories: %w", err)
	}
	return categories, nil
}

func (r *catalogRepository) CategoryExists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.ProductCategory{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check product category: %w", err)
	}
	return count > 0, nil
}

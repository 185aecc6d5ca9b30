package catalog

import (
	"context"
	"errors"

	"minimart/internal/models"
	"minimart/internal/repositories"
)

// Service manages the product catalog: products, their groups and
// their categories.
type Service interface {
	CreateProduct(ctx context.Context, input models.CreateProductInput) (*models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uint, input models.UpdateProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	ListProducts(ctx context.Context) ([]models.Product, error)

	// Search applies the conjunction of the given filters. String
	// filters match as accent-insensitive substrings. An empty input
	// returns the whole catalog; no match is ErrNoProductsMatch.
	Search(ctx context.Context, input models.ProductSearchInput) ([]models.Product, error)

	CreateGroup(ctx context.Context, name string) (*models.ProductGroup, error)
	GetGroup(ctx context.Context, id uint) (*models.ProductGroup, error)
	UpdateGroup(ctx context.Context, id uint, name string) (*models.ProductGroup, error)
	DeleteGroup(ctx context.Context, id uint) error
	ListGroups(ctx context.Context) ([]models.ProductGroup, error)

	CreateCategory(ctx context.Context, name string, groupID uint) (*models.ProductCategory, error)
	GetCategory(ctx context.Context, id uint) (*models.ProductCategory, error)
	UpdateCategory(ctx context.Context, id uint, input models.UpdateCategoryInput) (*models.ProductCategory, error)
	DeleteCategory(ctx context.Context, id uint) error
	ListCategories(ctx context.Context) ([]models.ProductCategory, error)
}

type service struct {
	repo repositories.CatalogRepository
}

// NewService creates a new catalog service
func NewService(repo repositories.CatalogRepository) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo}
}

func (s *service) CreateProduct(ctx context.Context, input models.CreateProductInput) (*models.Product, error) {
	if err := s.checkGroup(input.GroupID); err != nil {
		return nil, err
	}
	if err := s.checkCategory(input.CategoryID); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:          input.Name,
		Image:         input.Image,
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		Quantity:      input.Quantity,
		Description:   input.Description,
		Supplier:      input.Supplier,
		GroupID:       input.GroupID,
		CategoryID:    input.CategoryID,
	}
	if err := s.repo.CreateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *service) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.repo.GetProductByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *service) UpdateProduct(ctx context.Context, id uint, input models.UpdateProductInput) (*models.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.DiscountPrice != nil {
		product.DiscountPrice = *input.DiscountPrice
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Supplier != nil {
		product.Supplier = *input.Supplier
	}

	if err := s.repo.UpdateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *service) DeleteProduct(ctx context.Context, id uint) error {
	err := s.repo.DeleteProduct(id)
	if errors.Is(err, repositories.ErrProductNotFound) {
		return ErrProductNotFound
	}
	return err
}

func (s *service) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.ListProducts()
}

func (s *service) Search(ctx context.Context, input models.ProductSearchInput) ([]models.Product, error) {
	query := repositories.SearchQuery{
		MinPrice:    input.MinPrice,
		MaxPrice:    input.MaxPrice,
		HasDiscount: input.HasDiscount != nil && *input.HasDiscount,
		InStock:     input.InStock != nil && *input.InStock,
	}
	rows, err := s.repo.SearchProducts(query)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		if input.GroupName != nil && !foldContains(row.GroupName, *input.GroupName) {
			continue
		}
		if input.CategoryName != nil && !foldContains(row.CategoryName, *input.CategoryName) {
			continue
		}
		if input.ProductName != nil && !foldContains(row.Name, *input.ProductName) {
			continue
		}
		if input.Supplier != nil && !foldContains(row.Supplier, *input.Supplier) {
			continue
		}
		products = append(products, row.Product)
	}
	if len(products) == 0 {
		return nil, ErrNoProductsMatch
	}
	return products, nil
}

func (s *service) CreateGroup(ctx context.Context, name string) (*models.ProductGroup, error) {
	group := &models.ProductGroup{Name: name}
	if err := s.repo.CreateGroup(group); err != nil {
		if errors.Is(err, repositories.ErrDuplicateName) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return group, nil
}

func (s *service) GetGroup(ctx context.Context, id uint) (*models.ProductGroup, error) {
	group, err := s.repo.GetGroupByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return group, nil
}

func (s *service) UpdateGroup(ctx context.Context, id uint, name string) (*models.ProductGroup, error) {
	group, err := s.GetGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	group.Name = name
	if err := s.repo.UpdateGroup(group); err != nil {
		if errors.Is(err, repositories.ErrDuplicateName) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return group, nil
}

func (s *service) DeleteGroup(ctx context.Context, id uint) error {
	err := s.repo.DeleteGroup(id)
	if errors.Is(err, repositories.ErrGroupNotFound) {
		return ErrGroupNotFound
	}
	return err
}

func (s *service) ListGroups(ctx context.Context) ([]models.ProductGroup, error) {
	return s.repo.ListGroups()
}

func (s *service) CreateCategory(ctx context.Context, name string, groupID uint) (*models.ProductCategory, error) {
	if err := s.checkGroup(groupID); err != nil {
		return nil, err
	}
	category := &models.ProductCategory{Name: name, GroupID: groupID}
	if err := s.repo.CreateCategory(category); err != nil {
		if errors.Is(err, repositories.ErrDuplicateName) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return category, nil
}

func (s *service) GetCategory(ctx context.Context, id uint) (*models.ProductCategory, error) {
	category, err := s.repo.GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *service) UpdateCategory(ctx context.Context, id uint, input models.UpdateCategoryInput) (*models.ProductCategory, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.GroupID != nil {
		if err := s.checkGroup(*input.GroupID); err != nil {
			return nil, err
		}
		category.GroupID = *input.GroupID
	}
	if input.Name != nil {
		category.Name = *input.Name
	}
	if err := s.repo.UpdateCategory(category); err != nil {
		if errors.Is(err, repositories.ErrDuplicateName) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return category, nil
}

func (s *service) DeleteCategory(ctx context.Context, id uint) error {
	err := s.repo.DeleteCategory(id)
	if errors.Is(err, repositories.ErrCategoryNotFound) {
		return ErrCategoryNotFound
	}
	return err
}

func (s *service) ListCategories(ctx context.Context) ([]models.ProductCategory, error) {
	return s.repo.ListCategories()
}

func (s *service) checkGroup(id uint) error {
	ok, err := s.repo.GroupExists(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrGroupNotFound
	}
	return nil
}

func (s *service) checkCategory(id uint) error {
	ok, err := s.repo.CategoryExists(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCategoryNotFound
	}
	return nil
}

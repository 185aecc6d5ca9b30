package catalog

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrGroupNotFound    = errors.New("product group not found")
	ErrCategoryNotFound = errors.New("product category not found")
	ErrDuplicateName    = errors.New("name already taken")
	ErrNoProductsMatch  = errors.New("no products match the given filters")
)

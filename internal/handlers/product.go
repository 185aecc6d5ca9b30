package handlers

import (
	"errors"

	"minimart/internal/models"
	"minimart/internal/services/catalog"
	"minimart/internal/utils"
	"minimart/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	catalogService catalog.Service
}

func NewProductHandler(catalogService catalog.Service) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var input models.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	v := validation.New()
	v.Required("name", input.Name)
	v.Positive("price", input.Price)
	v.NonNegative("discount_price", input.DiscountPrice)
	v.NonNegative("quantity", float64(input.Quantity))
	if !v.Valid() {
		return utils.ValidationFailed(c, v.Errors)
	}

	product, err := h.catalogService.CreateProduct(c.Context(), input)
	if err != nil {
		return h.mapCatalogError(c, err, "failed to create product")
	}
	return utils.Created(c, product)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.catalogService.ListProducts(c.Context())
	if err != nil {
		return utils.InternalError(c, "failed to list products")
	}
	return utils.Success(c, products)
}

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid product id")
	}

	product, err := h.catalogService.GetProduct(c.Context(), id)
	if err != nil {
		return h.mapCatalogError(c, err, "failed to get product")
	}
	return utils.Success(c, product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid product id")
	}

	var input models.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	v := validation.New()
	if input.Name != nil {
		v.Required("name", *input.Name)
	}
	if input.Price != nil {
		v.Positive("price", *input.Price)
	}
	if input.DiscountPrice != nil {
		v.NonNegative("discount_price", *input.DiscountPrice)
	}
	if input.Quantity != nil {
		v.NonNegative("quantity", float64(*input.Quantity))
	}
	if !v.Valid() {
		return utils.ValidationFailed(c, v.Errors)
	}

	product, err := h.catalogService.UpdateProduct(c.Context(), id, input)
	if err != nil {
		return h.mapCatalogError(c, err, "failed to update product")
	}
	return utils.Success(c, product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid product id")
	}

	if err := h.catalogService.DeleteProduct(c.Context(), id); err != nil {
		return h.mapCatalogError(c, err, "failed to delete product")
	}
	return utils.Success(c, fiber.Map{"message": "product deleted"})
}

// Search filters the catalog by any conjunction of group, category,
// product name, supplier, price range, discount and stock.
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	var input models.ProductSearchInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	products, err := h.catalogService.Search(c.Context(), input)
	if err != nil {
		if errors.Is(err, catalog.ErrNoProductsMatch) {
			return utils.NotFound(c, "no products match the given filters")
		}
		return utils.InternalError(c, "search failed")
	}
	return utils.Success(c, products)
}

func (h *ProductHandler) CreateGroup(c *fiber.Ctx) error {
	var input models.CreateGroupInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	v := validation.New()
	v.Required("name", input.Name)
	if !v.Valid() {
		return utils.ValidationFailed(c, v.Errors)
	}

	group, err := h.catalogService.CreateGroup(c.Context(), input.Name)
	if err != nil {
		return h.mapCatalogError(c, err, "failed to create group")
	}
	return utils.Created(c, group)
}

func (h *ProductHandler) ListGroups(c *fiber.Ctx) error {
	groups, err := h.catalogService.ListGroups(c.Context())
	if err != nil {
		return utils.InternalError(c, "failed to list groups")
	}
	return utils.Success(c, groups)
}

func (h *ProductHandler) GetGroup(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid group id")
	}

	group, err := h.catalogService.GetGroup(c.Context(), id)
	if err != nil {
		return h.mapCatalogError(c, err, "failed to get group")
	}
	return utils.Success(c, group)
}

func (h *ProductHandler) UpdateGroup(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid group id")
	}

	var input models.CreateGroupInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	v := validation.New()
	v.Required("name", input.Name)
	if !v.Valid() {
		return utils.ValidationFailed(c, v.Errors)
	}

	group, err := h.catalogService.UpdateGroup(c.Context(), id, input.Name)
	if err != nil {
		return h.mapCatalogError(c, err, "failed to update group")
	}
	return utils.Success(c, group)
}

func (h *ProductHandler) DeleteGroup(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid group id")
	}

	if err := h.catalogService.DeleteGroup(c.Context(), id); err != nil {
		return h.mapCatalogError(c, err, "failed to delete group")
	}
	return utils.Success(c, fiber.Map{"message": "group deleted"})
}

func (h *ProductHandler) CreateCategory(c *fiber.Ctx) error {
	var input models.CreateCategoryInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	v := validation.New()
	v.Required("name", input.Name)
	if !v.Valid() {
		return utils.ValidationFailed(c, v.Errors)
	}

	category, err := h.catalogService.CreateCategory(c.Context(), input.Name, input.GroupID)
	if err != nil {
		return h.mapCatalogError(c, err, "failed to create category")
	}
	return utils.Created(c, category)
}

func (h *ProductHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListCategories(c.Context())
	if err != nil {
		return utils.InternalError(c, "failed to list categories")
	}
	return utils.Success(c, categories)
}

func (h *ProductHandler) GetCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid category id")
	}

	category, err := h.catalogService.GetCategory(c.Context(), id)
	if err != nil {
		return h.mapCatalogError(c, err, "failed to get category")
	}
	return utils.Success(c, category)
}

func (h *ProductHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid category id")
	}

	var input models.UpdateCategoryInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	category, err := h.catalogService.UpdateCategory(c.Context(), id, input)
	if err != nil {
		return h.mapCatalogError(c, err, "failed to update category")
	}
	return utils.Success(c, category)
}

func (h *ProductHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid category id")
	}

	if err := h.catalogService.DeleteCategory(c.Context(), id); err != nil {
		return h.mapCatalogError(c, err, "failed to delete category")
	}
	return utils.Success(c, fiber.Map{"message": "category deleted"})
}

func (h *ProductHandler) mapCatalogError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		return utils.NotFound(c, "product not found")
	case errors.Is(err, catalog.ErrGroupNotFound):
		return utils.NotFound(c, "product group not found")
	case errors.Is(err, catalog.ErrCategoryNotFound):
		return utils.NotFound(c, "product category not found")
	case errors.Is(err, catalog.ErrDuplicateName):
		return utils.BadRequest(c, "name already taken")
	default:
		return utils.InternalError(c, fallback)
	}
}

package handlers

import (
	"errors"
	"time"

	"minimart/internal/models"
	"minimart/internal/services/order"
	"minimart/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

type OrderHandler struct {
	orderService order.Service
}

func NewOrderHandler(orderService order.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var input models.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	created, err := h.orderService.Create(c.Context(), input)
	if err != nil {
		return h.mapOrderError(c, err, "failed to create order")
	}
	return utils.Created(c, created)
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.orderService.List(c.Context())
	if err != nil {
		return utils.InternalError(c, "failed to list orders")
	}
	return utils.Success(c, orders)
}

func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid order id")
	}

	found, err := h.orderService.Get(c.Context(), id)
	if err != nil {
		return h.mapOrderError(c, err, "failed to get order")
	}
	return utils.Success(c, found)
}

func (h *OrderHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "user_id")
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	orders, err := h.orderService.ListByUser(c.Context(), userID)
	if err != nil {
		return h.mapOrderError(c, err, "failed to list orders")
	}
	return utils.Success(c, orders)
}

// ListByDate returns orders placed on the given calendar day.
func (h *OrderHandler) ListByDate(c *fiber.Ctx) error {
	raw := c.Query("order_date")
	day, err := time.Parse(dateLayout, raw)
	if err != nil {
		return utils.BadRequest(c, "order_date must be YYYY-MM-DD")
	}

	orders, err := h.orderService.ListByDay(c.Context(), day)
	if err != nil {
		return h.mapOrderError(c, err, "failed to list orders")
	}
	return utils.Success(c, orders)
}

// ListByDateRange returns orders placed between start_date and
// end_date inclusive. An absent end_date means up to now.
func (h *OrderHandler) ListByDateRange(c *fiber.Ctx) error {
	start, err := time.Parse(dateLayout, c.Query("start_date"))
	if err != nil {
		return utils.BadRequest(c, "start_date must be YYYY-MM-DD")
	}

	var end time.Time
	if raw := c.Query("end_date"); raw != "" {
		end, err = time.Parse(dateLayout, raw)
		if err != nil {
			return utils.BadRequest(c, "end_date must be YYYY-MM-DD")
		}
		end = end.AddDate(0, 0, 1)
	}

	orders, err := h.orderService.ListByDateRange(c.Context(), start, end)
	if err != nil {
		return h.mapOrderError(c, err, "failed to list orders")
	}
	return utils.Success(c, orders)
}

func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid order id")
	}

	var input models.UpdateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	updated, err := h.orderService.Update(c.Context(), id, input)
	if err != nil {
		return h.mapOrderError(c, err, "failed to update order")
	}
	return utils.Success(c, updated)
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid order id")
	}

	if err := h.orderService.Delete(c.Context(), id); err != nil {
		return h.mapOrderError(c, err, "failed to delete order")
	}
	return utils.Success(c, fiber.Map{"message": "order deleted"})
}

func (h *OrderHandler) CreateDetail(c *fiber.Ctx) error {
	var input models.CreateOrderDetailInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	created, err := h.orderService.CreateDetail(c.Context(), input)
	if err != nil {
		return h.mapOrderError(c, err, "failed to create order detail")
	}
	return utils.Created(c, created)
}

func (h *OrderHandler) ListDetails(c *fiber.Ctx) error {
	details, err := h.orderService.ListDetails(c.Context())
	if err != nil {
		return utils.InternalError(c, "failed to list order details")
	}
	return utils.Success(c, details)
}

func (h *OrderHandler) GetDetail(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid order detail id")
	}

	detail, err := h.orderService.GetDetail(c.Context(), id)
	if err != nil {
		return h.mapOrderError(c, err, "failed to get order detail")
	}
	return utils.Success(c, detail)
}

// ListDetailsByOrder returns the line items of one order.
func (h *OrderHandler) ListDetailsByOrder(c *fiber.Ctx) error {
	orderID, err := parseID(c, "order_id")
	if err != nil {
		return utils.BadRequest(c, "invalid order id")
	}

	details, err := h.orderService.ListDetailsByOrder(c.Context(), orderID)
	if err != nil {
		return h.mapOrderError(c, err, "failed to list order details")
	}
	return utils.Success(c, details)
}

func (h *OrderHandler) UpdateDetail(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid order detail id")
	}

	var input models.UpdateOrderDetailInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	updated, err := h.orderService.UpdateDetail(c.Context(), id, input)
	if err != nil {
		return h.mapOrderError(c, err, "failed to update order detail")
	}
	return utils.Success(c, updated)
}

func (h *OrderHandler) DeleteDetail(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid order detail id")
	}

	if err := h.orderService.DeleteDetail(c.Context(), id); err != nil {
		return h.mapOrderError(c, err, "failed to delete order detail")
	}
	return utils.Success(c, fiber.Map{"message": "order detail deleted"})
}

func (h *OrderHandler) mapOrderError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		return utils.NotFound(c, "order not found")
	case errors.Is(err, order.ErrDetailNotFound):
		return utils.NotFound(c, "order detail not found")
	case errors.Is(err, order.ErrUserNotFound):
		return utils.NotFound(c, "user not found")
	case errors.Is(err, order.ErrProductNotFound):
		return utils.NotFound(c, "product not found")
	case errors.Is(err, order.ErrInvalidQuantity):
		return utils.BadRequest(c, "quantity must be positive")
	case errors.Is(err, order.ErrInvalidDateRange):
		return utils.BadRequest(c, "invalid date range")
	default:
		return utils.InternalError(c, fallback)
	}
}

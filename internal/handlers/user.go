package handlers

import (
	"errors"
	"strconv"

	"minimart/internal/models"
	"minimart/internal/services/auth"
	"minimart/internal/services/user"
	"minimart/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates a new account. Open to anonymous callers.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	created, err := h.userService.Create(c.Context(), input)
	if err != nil {
		var verr *user.ValidationError
		switch {
		case errors.As(err, &verr):
			return utils.ValidationFailed(c, verr.Fields)
		case errors.Is(err, user.ErrEmailTaken):
			return utils.BadRequest(c, "email already registered")
		case errors.Is(err, user.ErrInvalidRole):
			return utils.BadRequest(c, "unknown role")
		default:
			return utils.InternalError(c, "failed to create user")
		}
	}
	return utils.Created(c, created)
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.Context())
	if err != nil {
		return utils.InternalError(c, "failed to list users")
	}
	return utils.Success(c, users)
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	found, err := h.userService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return utils.NotFound(c, "user not found")
		}
		return utils.InternalError(c, "failed to get user")
	}
	return utils.Success(c, found)
}

func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	found, err := h.userService.GetByEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return utils.NotFound(c, "user not found")
		}
		return utils.InternalError(c, "failed to get user")
	}
	return utils.Success(c, found)
}

// Update applies a partial update. The caller must be the account
// owner or an admin.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	target, err := h.userService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return utils.NotFound(c, "user not found")
		}
		return utils.InternalError(c, "failed to get user")
	}
	if !auth.CanModify(claims, target.Email) {
		return utils.Unauthorized(c, "not allowed to modify this user")
	}

	var input models.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	updated, err := h.userService.Update(c.Context(), id, input)
	if err != nil {
		var verr *user.ValidationError
		switch {
		case errors.As(err, &verr):
			return utils.ValidationFailed(c, verr.Fields)
		case errors.Is(err, user.ErrEmailTaken):
			return utils.BadRequest(c, "email already registered")
		default:
			return utils.InternalError(c, "failed to update user")
		}
	}
	return utils.Success(c, updated)
}

// Delete removes an account together with its orders and ledger
// entries. The caller must be the account owner or an admin.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	target, err := h.userService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return utils.NotFound(c, "user not found")
		}
		return utils.InternalError(c, "failed to get user")
	}
	if !auth.CanModify(claims, target.Email) {
		return utils.Unauthorized(c, "not allowed to modify this user")
	}

	if err := h.userService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return utils.NotFound(c, "user not found")
		}
		return utils.InternalError(c, "failed to delete user")
	}
	return utils.Success(c, fiber.Map{"message": "user deleted"})
}

// parseID reads a positive integer path parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

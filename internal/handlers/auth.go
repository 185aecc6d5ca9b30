package handlers

import (
	"errors"

	"minimart/internal/services/auth"
	"minimart/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges email and password for a bearer token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			return utils.NotFound(c, "user not found")
		case errors.Is(err, auth.ErrInvalidCredentials):
			return utils.BadRequest(c, "incorrect password")
		default:
			return utils.InternalError(c, "login failed")
		}
	}
	return utils.Success(c, result)
}

type changePasswordRequest struct {
	Email       string `json:"email"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ChangePassword rotates the password of the given account. The caller
// must be the account owner or an admin.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	if !auth.CanModify(claims, req.Email) {
		return utils.Unauthorized(c, "not allowed to modify this user")
	}

	if err := h.authService.ChangePassword(req.Email, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			return utils.NotFound(c, "user not found")
		case errors.Is(err, auth.ErrInvalidCredentials):
			return utils.BadRequest(c, "incorrect password")
		case errors.Is(err, auth.ErrWeakPassword):
			return utils.BadRequest(c, "password too short")
		default:
			return utils.InternalError(c, "password change failed")
		}
	}
	return utils.Success(c, fiber.Map{"message": "password updated"})
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"minimart/internal/models"
	"minimart/internal/repositories"
	"minimart/internal/services/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserRepo serves accounts from a fixed map; the rest of the
// interface is unused here.
type stubUserRepo struct {
	repositories.UserRepository
	users map[string]*models.User
}

func (s *stubUserRepo) GetByEmail(email string) (*models.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	repo := &stubUserRepo{users: map[string]*models.User{
		"nguyen@example.com": {
			ID:       1,
			Email:    "nguyen@example.com",
			Password: hashed,
			Role:     models.RoleCustomer,
		},
	}}
	h := NewAuthHandler(auth.NewService(repo))

	app := fiber.New()
	app.Post("/api/user/login", h.Login)
	app.Post("/api/user/change_password", func(c *fiber.Ctx) error {
		c.Locals("claims", &models.UserClaims{Email: "nguyen@example.com", Role: models.RoleCustomer})
		return c.Next()
	}, h.ChangePassword)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) int {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestLoginStatusCodes(t *testing.T) {
	app := newAuthApp(t)

	t.Run("valid credentials", func(t *testing.T) {
		status := postJSON(t, app, "/api/user/login", loginRequest{
			Email:    "nguyen@example.com",
			Password: "secret123",
		})
		assert.Equal(t, fiber.StatusOK, status)
	})

	t.Run("wrong password is a bad request", func(t *testing.T) {
		status := postJSON(t, app, "/api/user/login", loginRequest{
			Email:    "nguyen@example.com",
			Password: "wrong-password",
		})
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("unknown email", func(t *testing.T) {
		status := postJSON(t, app, "/api/user/login", loginRequest{
			Email:    "missing@example.com",
			Password: "secret123",
		})
		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestChangePasswordStatusCodes(t *testing.T) {
	app := newAuthApp(t)

	t.Run("wrong old password is a bad request", func(t *testing.T) {
		status := postJSON(t, app, "/api/user/change_password", changePasswordRequest{
			Email:       "nguyen@example.com",
			OldPassword: "wrong-password",
			NewPassword: "newsecret",
		})
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("short new password is a bad request", func(t *testing.T) {
		status := postJSON(t, app, "/api/user/change_password", changePasswordRequest{
			Email:       "nguyen@example.com",
			OldPassword: "secret123",
			NewPassword: "short",
		})
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("other account is unauthorized", func(t *testing.T) {
		status := postJSON(t, app, "/api/user/change_password", changePasswordRequest{
			Email:       "someone-else@example.com",
			OldPassword: "secret123",
			NewPassword: "newsecret",
		})
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})
}

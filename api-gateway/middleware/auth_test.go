package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayse/sweetshop/pkg/auth"
)

func setupApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": string(c.Request().Header.Peek("X-User-ID")),
			"role":    string(c.Request().Header.Peek("X-User-Role")),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid token injects identity headers", func(t *testing.T) {
		app := setupApp(AuthMiddleware())
		token, err := auth.GenerateToken(42, "ayse", "user")
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		app := setupApp(AuthMiddleware())

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/protected", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		app := setupApp(AuthMiddleware())

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		app := setupApp(AuthMiddleware())

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAdminMiddleware(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		app := setupApp(AuthMiddleware(), AdminMiddleware())
		token, err := auth.GenerateToken(1, "ayse", "admin")
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("plain user is forbidden", func(t *testing.T) {
		app := setupApp(AuthMiddleware(), AdminMiddleware())
		token, err := auth.GenerateToken(2, "mehmet", "user")
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

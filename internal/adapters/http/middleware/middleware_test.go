package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"library-desk/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	Setup(app, &config.Config{AppMode: "dev"})
	return app
}

func TestStrictRateLimiter(t *testing.T) {
	app := newTestApp(t)
	app.Post("/payments", StrictRateLimiter(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < paymentRequestsPerMinute; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/payments", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/payments", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
}

func TestCustomErrorHandler(t *testing.T) {
	app := newTestApp(t)
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Book not found.")
	})
	app.Get("/broken", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	tests := []struct {
		path    string
		code    int
		message string
	}{
		{path: "/missing", code: http.StatusNotFound, message: "Book not found."},
		{path: "/broken", code: http.StatusInternalServerError, message: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.message, body["error"])
		})
	}
}

func TestCacheHeaders(t *testing.T) {
	app := newTestApp(t)
	app.Get("/books", CacheControl(30*time.Second), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	app.Get("/loans", NoCacheHeaders(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/books", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, "public, max-age=30", resp.Header.Get(fiber.HeaderCacheControl))
	assert.Equal(t, "DENY", resp.Header.Get(fiber.HeaderXFrameOptions))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/loans", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, "no-store, no-cache, must-revalidate", resp.Header.Get(fiber.HeaderCacheControl))
	assert.Equal(t, "no-cache", resp.Header.Get(fiber.HeaderPragma))
}

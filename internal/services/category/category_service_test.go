package category

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"

	"github.com/elvinasadov/arenda-api/internal/config"
)

func newCategoryApp() *fiber.App {
	s := NewCategoryService(&config.Config{JWTSecret: "test-secret"})
	app := fiber.New()
	app.Get("/api/categories/:id", s.GetCategory)
	app.Post("/api/categories", s.CreateCategory)
	app.Put("/api/categories/:id", s.UpdateCategory)
	app.Delete("/api/categories/:id", s.DeleteCategory)
	return app
}

func TestGetCategoryRejectsBadID(t *testing.T) {
	app := newCategoryApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/categories/not-a-uuid", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateCategoryRequiresName(t *testing.T) {
	app := newCategoryApp()

	req := httptest.NewRequest("POST", "/api/categories", strings.NewReader(`{"icon":"/svgs/phone.svg"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateCategoryRejectsUnslugableName(t *testing.T) {
	app := newCategoryApp()

	// Из такого названия slug не выводится
	req := httptest.NewRequest("POST", "/api/categories", strings.NewReader(`{"name":"!!!"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateCategoryRejectsBadID(t *testing.T) {
	app := newCategoryApp()

	req := httptest.NewRequest("PUT", "/api/categories/abc", strings.NewReader(`{"name":"Телефоны"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteCategoryRejectsBadID(t *testing.T) {
	app := newCategoryApp()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/categories/abc", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

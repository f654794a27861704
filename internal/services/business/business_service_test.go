package business

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"

	"github.com/elvinasadov/arenda-api/internal/config"
)

func newBusinessApp() *fiber.App {
	s := NewBusinessService(&config.Config{JWTSecret: "test-secret"})
	app := fiber.New()
	app.Post("/api/business-profiles", s.CreateProfile)
	app.Put("/api/business-profiles/:id", s.UpdateProfile)
	app.Delete("/api/business-profiles/:id", s.DeleteProfile)
	return app
}

func postJSON(app *fiber.App, method, target, body string) (int, error) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, nil
}

func TestCreateProfileRequiresNameAndDescription(t *testing.T) {
	app := newBusinessApp()

	for _, body := range []string{
		`{}`,
		`{"name":"Аренда Техники"}`,
		`{"description":"Прокат инструмента"}`,
	} {
		status, err := postJSON(app, "POST", "/api/business-profiles", body)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, status, "тело: %s", body)
	}
}

func TestCreateProfileRejectsUnslugableName(t *testing.T) {
	app := newBusinessApp()

	status, err := postJSON(app, "POST", "/api/business-profiles", `{"name":"!!!","description":"Прокат"}`)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, status)
}

func TestUpdateProfileRejectsBadID(t *testing.T) {
	app := newBusinessApp()

	status, err := postJSON(app, "PUT", "/api/business-profiles/abc", `{"name":"Новое имя"}`)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, status)
}

func TestDeleteProfileRejectsBadID(t *testing.T) {
	app := newBusinessApp()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/business-profiles/abc", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

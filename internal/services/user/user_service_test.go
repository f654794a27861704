package user

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"

	"github.com/elvinasadov/arenda-api/internal/config"
)

func newUserApp() *fiber.App {
	s := NewUserService(&config.Config{JWTSecret: "test-secret"})
	app := fiber.New()
	app.Post("/api/users/register", s.Register)
	app.Post("/api/users/login", s.Login)
	app.Post("/api/users/logout", s.Logout)
	return app
}

func postJSON(app *fiber.App, path, body string) (int, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, nil
}

func TestRegisterRequiresFields(t *testing.T) {
	app := newUserApp()

	tests := []string{
		`{}`,
		`{"name":"Эльвин"}`,
		`{"name":"Эльвин","email":"elvin@example.com"}`,
		`{"email":"elvin@example.com","password":"secret123"}`,
	}

	for _, body := range tests {
		code, err := postJSON(app, "/api/users/register", body)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, code, body)
	}
}

func TestLoginRequiresFields(t *testing.T) {
	app := newUserApp()

	for _, body := range []string{`{}`, `{"email":"elvin@example.com"}`, `{"password":"secret123"}`} {
		code, err := postJSON(app, "/api/users/login", body)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, code, body)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newUserApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/api/users/logout", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Cookie с токеном должна быть сброшена
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)
	found := false
	for _, cookie := range cookies {
		if cookie.Name == "token" {
			found = true
			require.Empty(t, cookie.Value)
		}
	}
	require.True(t, found)
}

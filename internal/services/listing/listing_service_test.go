package listing

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/elvinasadov/arenda-api/internal/config"
)

func testService() *ListingService {
	cfg := &config.Config{JWTSecret: "test-secret"}
	return NewListingService(cfg, nil)
}

// withUserID подставляет авторизованного пользователя для защищённых маршрутов
func withUserID(userID string) fiber.Handler {
	return func(c fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
}

// multipartBody собирает multipart-запрос с полями формы без файлов
func multipartBody(t *testing.T, fields map[string]string) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func validFields() map[string]string {
	return map[string]string{
		"title":         "Аренда фотоаппарата",
		"description":   "Canon EOS R6 на выходные",
		"price_per_day": "25.50",
		"category_id":   uuid.NewString(),
		"contact_email": "owner@example.com",
		"contact_phone": "+994501234567",
	}
}

func newCreateApp(s *ListingService) *fiber.App {
	app := fiber.New()
	app.Post("/api/listings", s.CreateListing, withUserID(uuid.NewString()))
	return app
}

func TestCreateListingRequiresFields(t *testing.T) {
	s := testService()
	app := newCreateApp(s)

	fields := validFields()
	delete(fields, "title")
	body, contentType := multipartBody(t, fields)

	req := httptest.NewRequest("POST", "/api/listings", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateListingRequiresImages(t *testing.T) {
	s := testService()
	app := newCreateApp(s)

	// Все поля на месте, но ни одного файла
	body, contentType := multipartBody(t, validFields())

	req := httptest.NewRequest("POST", "/api/listings", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateListingRejectsNegativePrice(t *testing.T) {
	s := testService()
	app := newCreateApp(s)

	fields := validFields()
	fields["price_per_day"] = "-5"
	body, contentType := multipartBody(t, fields)

	req := httptest.NewRequest("POST", "/api/listings", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateListingRejectsBadCategoryID(t *testing.T) {
	s := testService()
	app := newCreateApp(s)

	fields := validFields()
	fields["category_id"] = "wedding-dresses"
	body, contentType := multipartBody(t, fields)

	req := httptest.NewRequest("POST", "/api/listings", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetListingRejectsBadID(t *testing.T) {
	s := testService()
	app := fiber.New()
	app.Get("/api/listings/:id", s.GetListing)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/listings/not-a-uuid", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestContactClickRejectsBadID(t *testing.T) {
	s := testService()
	app := fiber.New()
	app.Post("/api/listings/:id/contact", s.ContactClick, withUserID(uuid.NewString()))

	resp, err := app.Test(httptest.NewRequest("POST", "/api/listings/abc/contact", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateListingRejectsBadID(t *testing.T) {
	s := testService()
	app := fiber.New()
	app.Put("/api/listings/:id", s.UpdateListing, withUserID(uuid.NewString()))

	resp, err := app.Test(httptest.NewRequest("PUT", "/api/listings/abc", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

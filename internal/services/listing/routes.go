package listing

import (
	"github.com/gofiber/fiber/v3"

	"github.com/elvinasadov/arenda-api/internal/middleware"
)

// SetupRoutes настраивает маршруты для API объявлений
func (s *ListingService) SetupRoutes(app *fiber.App) {
	// Публичные маршруты
	app.Get("/api/listings", s.GetListings)
	app.Get("/api/listings/stats", s.GetStats)
	app.Get("/api/listings/:id", s.GetListing)

	authMiddleware := middleware.AuthMiddleware(s.jwtService)

	// Защищенные маршруты (требуют авторизации)
	api := app.Group("/api/listings")
	api.Post("/", s.CreateListing, authMiddleware)
	api.Put("/:id", s.UpdateListing, authMiddleware)
	api.Delete("/:id", s.DeleteListing, authMiddleware)
	api.Post("/:id/contact", s.ContactClick, authMiddleware)

	// Кабинет пользователя
	dashboard := app.Group("/api/dashboard")
	dashboard.Use(authMiddleware)
	dashboard.Get("/listings", s.GetMyListings)
	dashboard.Get("/listings/:id/stats", s.GetListingStats)
}

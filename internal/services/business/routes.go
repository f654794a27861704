package business

import (
	"github.com/gofiber/fiber/v3"

	"github.com/elvinasadov/arenda-api/internal/middleware"
)

// SetupRoutes настраивает маршруты для API профилей бизнеса
func (s *BusinessService) SetupRoutes(app *fiber.App) {
	// Публичные маршруты чтения
	app.Get("/api/business-profiles", s.GetProfiles)
	app.Get("/api/business-profiles/slug/:slug", s.GetProfileBySlug)

	authMiddleware := middleware.AuthMiddleware(s.jwtService)
	adminOnly := middleware.AdminOnly()

	// Изменения доступны только администратору
	api := app.Group("/api/business-profiles")
	api.Post("/", s.CreateProfile, authMiddleware, adminOnly)
	api.Put("/:id", s.UpdateProfile, authMiddleware, adminOnly)
	api.Delete("/:id", s.DeleteProfile, authMiddleware, adminOnly)
}

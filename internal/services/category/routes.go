package category

import (
	"github.com/gofiber/fiber/v3"

	"github.com/elvinasadov/arenda-api/internal/middleware"
)

// SetupRoutes настраивает маршруты для API категорий
func (s *CategoryService) SetupRoutes(app *fiber.App) {
	// Публичные маршруты чтения
	app.Get("/api/categories", s.GetCategories)
	app.Get("/api/categories/slug/:slug", s.GetCategoryBySlug)
	app.Get("/api/categories/:id", s.GetCategory)

	authMiddleware := middleware.AuthMiddleware(s.jwtService)
	adminOnly := middleware.AdminOnly()

	// Изменения доступны только администратору
	api := app.Group("/api/categories")
	api.Post("/", s.CreateCategory, authMiddleware, adminOnly)
	api.Put("/:id", s.UpdateCategory, authMiddleware, adminOnly)
	api.Delete("/:id", s.DeleteCategory, authMiddleware, adminOnly)
}

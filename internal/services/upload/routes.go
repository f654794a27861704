package upload

import (
	"github.com/gofiber/fiber/v3"

	"github.com/elvinasadov/arenda-api/internal/middleware"
)

// SetupRoutes настраивает маршруты для загрузки изображений
func (s *UploadService) SetupRoutes(app *fiber.App) {
	// Группа для API загрузки
	api := app.Group("/api/upload")

	// Защищенные маршруты (требуют авторизации)
	api.Use(middleware.AuthMiddleware(s.jwtService))

	// Маршрут для получения параметров прямой загрузки с клиента
	api.Get("/params", s.GenerateUploadParams)
}

package main

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/elvinasadov/arenda-api/internal/config"
	"github.com/elvinasadov/arenda-api/internal/db"
	"github.com/elvinasadov/arenda-api/internal/services/business"
	"github.com/elvinasadov/arenda-api/internal/services/category"
	"github.com/elvinasadov/arenda-api/internal/services/favorite"
	"github.com/elvinasadov/arenda-api/internal/services/listing"
	"github.com/elvinasadov/arenda-api/internal/services/upload"
	"github.com/elvinasadov/arenda-api/internal/services/user"
)

func main() {
	// Загружаем конфигурацию
	cfg := config.LoadConfig()

	// Инициализируем базу данных
	if err := db.InitDB(cfg); err != nil {
		log.Fatalf("❌ Ошибка при инициализации базы данных: %v", err)
	}
	defer db.CloseDB()

	// Применяем схему и стартовые категории
	if err := db.Migrate(); err != nil {
		log.Fatalf("❌ Ошибка при миграции базы данных: %v", err)
	}
	if err := db.SeedCategories(); err != nil {
		log.Fatalf("❌ Ошибка при добавлении стартовых категорий: %v", err)
	}

	// Создаём экземпляр Fiber
	app := fiber.New(fiber.Config{
		AppName:      "Arenda API",
		ErrorHandler: errorHandler,
	})

	// Добавляем middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: cfg.AllowedOrigin != "*",
	}))

	// Создаём сервисы
	uploadService, err := upload.NewUploadService(cfg)
	if err != nil {
		log.Fatalf("❌ Ошибка при инициализации Cloudinary: %v", err)
	}
	userService := user.NewUserService(cfg)
	listingService := listing.NewListingService(cfg, uploadService)
	categoryService := category.NewCategoryService(cfg)
	businessService := business.NewBusinessService(cfg)
	favoriteService := favorite.NewFavoriteService(cfg)

	// Регистрируем маршруты
	userService.SetupRoutes(app)
	listingService.SetupRoutes(app)
	categoryService.SetupRoutes(app)
	businessService.SetupRoutes(app)
	favoriteService.SetupRoutes(app)
	uploadService.SetupRoutes(app)

	// Запускаем сервер
	log.Println("✅ Arenda API запущен на порту 8080")
	log.Fatal(app.Listen(":8080"))
}

// errorHandler обрабатывает ошибки Fiber
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	// Проверяем, является ли ошибка из Fiber
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Отправляем ошибку в JSON
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

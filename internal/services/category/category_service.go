package category

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/elvinasadov/arenda-api/internal/config"
	"github.com/elvinasadov/arenda-api/internal/db"
	"github.com/elvinasadov/arenda-api/internal/models"
	"github.com/elvinasadov/arenda-api/internal/utils"
)

// CategoryService представляет сервис для работы с категориями
type CategoryService struct {
	cfg        *config.Config
	jwtService *utils.JWTService
}

// NewCategoryService создает новый экземпляр CategoryService
func NewCategoryService(cfg *config.Config) *CategoryService {
	return &CategoryService{
		cfg:        cfg,
		jwtService: utils.NewJWTService(cfg.JWTSecret),
	}
}

const categoryColumns = "id, name, slug, icon, parent_id, is_active, created_at, updated_at"

// scanCategory сканирует строку категории в модель
func scanCategory(row pgx.Row, cat *models.Category) error {
	return row.Scan(
		&cat.ID,
		&cat.Name,
		&cat.Slug,
		&cat.Icon,
		&cat.ParentID,
		&cat.IsActive,
		&cat.CreatedAt,
		&cat.UpdatedAt,
	)
}

// GetCategories возвращает список активных категорий
func (s *CategoryService) GetCategories(c fiber.Ctx) error {
	ctx, cancel := db.GetContext()
	defer cancel()

	rows, err := db.Pool.Query(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE is_active = TRUE
		ORDER BY name ASC
	`)

	if err != nil {
		log.Printf("Ошибка запроса категорий: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка получения категорий"})
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := scanCategory(rows, &cat); err != nil {
			log.Printf("Ошибка сканирования категории: %v", err)
			continue
		}
		categories = append(categories, cat)
	}

	return c.JSON(fiber.Map{"categories": categories})
}

// GetCategory возвращает категорию по ID
func (s *CategoryService) GetCategory(c fiber.Ctx) error {
	categoryUUID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID категории"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	var cat models.Category
	err = scanCategory(db.Pool.QueryRow(ctx, `
		SELECT `+categoryColumns+` FROM categories WHERE id = $1
	`, categoryUUID), &cat)

	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Категория не найдена"})
		}
		log.Printf("Ошибка получения категории: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка получения категории"})
	}

	return c.JSON(fiber.Map{"category": cat})
}

// GetCategoryBySlug возвращает категорию по slug
func (s *CategoryService) GetCategoryBySlug(c fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Slug не указан"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	var cat models.Category
	err := scanCategory(db.Pool.QueryRow(ctx, `
		SELECT `+categoryColumns+` FROM categories WHERE slug = $1
	`, slug), &cat)

	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Категория не найдена"})
		}
		log.Printf("Ошибка получения категории: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка получения категории"})
	}

	return c.JSON(fiber.Map{"category": cat})
}

// CreateCategory создает новую категорию (только для администратора)
func (s *CategoryService) CreateCategory(c fiber.Ctx) error {
	var requestData struct {
		Name     string `json:"name"`
		Icon     string `json:"icon"`
		ParentID string `json:"parent_id"`
	}

	if err := c.Bind().Body(&requestData); err != nil {
		log.Printf("Ошибка декодирования тела запроса: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	if requestData.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Название обязательно"})
	}

	var parentID *uuid.UUID
	if requestData.ParentID != "" {
		parentUUID, err := uuid.Parse(requestData.ParentID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID родительской категории"})
		}
		parentID = &parentUUID
	}

	// Slug всегда выводится из названия
	slug := utils.Slugify(requestData.Name)
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Из названия не получается корректный slug"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	var cat models.Category
	err := scanCategory(db.Pool.QueryRow(ctx, `
		INSERT INTO categories (name, slug, icon, parent_id)
		VALUES ($1, $2, $3, $4)
		RETURNING `+categoryColumns+`
	`, requestData.Name, slug, requestData.Icon, parentID), &cat)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Категория с таким названием или slug уже существует"})
		}
		log.Printf("Ошибка создания категории: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка создания категории"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"category": cat})
}

// UpdateCategory обновляет категорию (только для администратора)
func (s *CategoryService) UpdateCategory(c fiber.Ctx) error {
	categoryUUID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID категории"})
	}

	var requestData struct {
		Name     *string `json:"name"`
		Icon     *string `json:"icon"`
		ParentID *string `json:"parent_id"`
		IsActive *bool   `json:"is_active"`
	}

	if err := c.Bind().Body(&requestData); err != nil {
		log.Printf("Ошибка декодирования тела запроса: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	var current models.Category
	err = scanCategory(db.Pool.QueryRow(ctx, `
		SELECT `+categoryColumns+` FROM categories WHERE id = $1
	`, categoryUUID), &current)

	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Категория не найдена"})
		}
		log.Printf("Ошибка получения категории: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка получения категории"})
	}

	name := current.Name
	slug := current.Slug
	icon := current.Icon
	parentID := current.ParentID
	isActive := current.IsActive

	if requestData.Name != nil && *requestData.Name != "" {
		name = *requestData.Name
		// Slug пересчитывается при каждом изменении названия
		slug = utils.Slugify(name)
		if slug == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Из названия не получается корректный slug"})
		}
	}
	if requestData.Icon != nil {
		icon = *requestData.Icon
	}
	if requestData.ParentID != nil {
		if *requestData.ParentID == "" {
			parentID = nil
		} else {
			parentUUID, err := uuid.Parse(*requestData.ParentID)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID родительской категории"})
			}
			parentID = &parentUUID
		}
	}
	if requestData.IsActive != nil {
		isActive = *requestData.IsActive
	}

	var cat models.Category
	err = scanCategory(db.Pool.QueryRow(ctx, `
		UPDATE categories
		SET name = $1, slug = $2, icon = $3, parent_id = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING `+categoryColumns+`
	`, name, slug, icon, parentID, isActive, categoryUUID), &cat)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Категория с таким названием или slug уже существует"})
		}
		log.Printf("Ошибка обновления категории: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка обновления категории"})
	}

	return c.JSON(fiber.Map{"category": cat})
}

// DeleteCategory удаляет категорию (только для администратора)
func (s *CategoryService) DeleteCategory(c fiber.Ctx) error {
	categoryUUID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID категории"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	tag, err := db.Pool.Exec(ctx, "DELETE FROM categories WHERE id = $1", categoryUUID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Категория используется в объявлениях"})
		}
		log.Printf("Ошибка удаления категории: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка удаления категории"})
	}

	if tag.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Категория не найдена"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Категория успешно удалена",
	})
}

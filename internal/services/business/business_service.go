package business

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/elvinasadov/arenda-api/internal/config"
	"github.com/elvinasadov/arenda-api/internal/db"
	"github.com/elvinasadov/arenda-api/internal/models"
	"github.com/elvinasadov/arenda-api/internal/utils"
)

// BusinessService представляет сервис для работы с профилями бизнеса
type BusinessService struct {
	cfg        *config.Config
	jwtService *utils.JWTService
}

// NewBusinessService создает новый экземпляр BusinessService
func NewBusinessService(cfg *config.Config) *BusinessService {
	return &BusinessService{
		cfg:        cfg,
		jwtService: utils.NewJWTService(cfg.JWTSecret),
	}
}

const profileColumns = "id, name, slug, description, image_url, created_at, updated_at"

// scanProfile сканирует строку профиля в модель
func scanProfile(row pgx.Row, p *models.BusinessProfile) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.ImageURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

// slugTaken проверяет, занят ли slug другим профилем
func slugTaken(slug string, excludeID *uuid.UUID) (bool, error) {
	ctx, cancel := db.GetContext()
	defer cancel()

	var exists bool
	var err error
	if excludeID != nil {
		err = db.Pool.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM business_profiles WHERE slug = $1 AND id <> $2)
		`, slug, *excludeID).Scan(&exists)
	} else {
		err = db.Pool.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM business_profiles WHERE slug = $1)
		`, slug).Scan(&exists)
	}

	return exists, err
}

// GetProfiles возвращает все профили бизнеса
func (s *BusinessService) GetProfiles(c fiber.Ctx) error {
	ctx, cancel := db.GetContext()
	defer cancel()

	rows, err := db.Pool.Query(ctx, `
		SELECT `+profileColumns+`
		FROM business_profiles
		ORDER BY created_at DESC
	`)

	if err != nil {
		log.Printf("Ошибка запроса профилей: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка получения профилей"})
	}
	defer rows.Close()

	profiles := []models.BusinessProfile{}
	for rows.Next() {
		var p models.BusinessProfile
		if err := scanProfile(rows, &p); err != nil {
			log.Printf("Ошибка сканирования профиля: %v", err)
			continue
		}
		profiles = append(profiles, p)
	}

	return c.JSON(fiber.Map{"profiles": profiles})
}

// GetProfileBySlug возвращает профиль бизнеса и его активные объявления
func (s *BusinessService) GetProfileBySlug(c fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Slug не указан"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	var profile models.BusinessProfile
	err := scanProfile(db.Pool.QueryRow(ctx, `
		SELECT `+profileColumns+` FROM business_profiles WHERE slug = $1
	`, slug), &profile)

	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Профиль бизнеса не найден"})
		}
		log.Printf("Ошибка получения профиля: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка получения профиля"})
	}

	// Активные объявления профиля
	rows, err := db.Pool.Query(ctx, `
		SELECT id, owner_id, category_id, business_profile_id, title, description,
			price_per_day, previous_price, contact_email, contact_phone,
			view_count, contact_count, is_active, created_at, updated_at
		FROM listings
		WHERE business_profile_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC
	`, profile.ID)

	if err != nil {
		log.Printf("Ошибка запроса объявлений профиля: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка получения объявлений"})
	}
	defer rows.Close()

	listings := []models.Listing{}
	for rows.Next() {
		var l models.Listing
		if err := rows.Scan(
			&l.ID,
			&l.OwnerID,
			&l.CategoryID,
			&l.BusinessProfileID,
			&l.Title,
			&l.Description,
			&l.PricePerDay,
			&l.PreviousPrice,
			&l.ContactEmail,
			&l.ContactPhone,
			&l.ViewCount,
			&l.ContactCount,
			&l.IsActive,
			&l.CreatedAt,
			&l.UpdatedAt,
		); err != nil {
			log.Printf("Ошибка сканирования объявления: %v", err)
			continue
		}
		listings = append(listings, l)
	}

	return c.JSON(fiber.Map{
		"profile":  profile,
		"listings": listings,
	})
}

// CreateProfile создает новый профиль бизнеса (только для администратора)
func (s *BusinessService) CreateProfile(c fiber.Ctx) error {
	var requestData struct {
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
	}

	if err := c.Bind().Body(&requestData); err != nil {
		log.Printf("Ошибка декодирования тела запроса: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	if requestData.Name == "" || requestData.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Название и описание обязательны"})
	}

	// Slug генерируется из названия, если не передан
	slug := requestData.Slug
	if slug == "" {
		slug = utils.Slugify(requestData.Name)
	}
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Из названия не получается корректный slug"})
	}

	// Slug должен быть уникальным
	taken, err := slugTaken(slug, nil)
	if err != nil {
		log.Printf("Ошибка проверки slug: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка проверки slug"})
	}
	if taken {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Slug уже занят"})
	}

	var imageURL *string
	if requestData.ImageURL != "" {
		imageURL = &requestData.ImageURL
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	var profile models.BusinessProfile
	err = scanProfile(db.Pool.QueryRow(ctx, `
		INSERT INTO business_profiles (name, slug, description, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING `+profileColumns+`
	`, requestData.Name, slug, requestData.Description, imageURL), &profile)

	if err != nil {
		log.Printf("Ошибка создания профиля: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка создания профиля"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"profile": profile})
}

// UpdateProfile обновляет профиль бизнеса (только для администратора)
func (s *BusinessService) UpdateProfile(c fiber.Ctx) error {
	profileUUID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID профиля"})
	}

	var requestData struct {
		Name        *string `json:"name"`
		Slug        *string `json:"slug"`
		Description *string `json:"description"`
		ImageURL    *string `json:"image_url"`
	}

	if err := c.Bind().Body(&requestData); err != nil {
		log.Printf("Ошибка декодирования тела запроса: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	var current models.BusinessProfile
	err = scanProfile(db.Pool.QueryRow(ctx, `
		SELECT `+profileColumns+` FROM business_profiles WHERE id = $1
	`, profileUUID), &current)

	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Профиль бизнеса не найден"})
		}
		log.Printf("Ошибка получения профиля: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка получения профиля"})
	}

	name := current.Name
	slug := current.Slug
	description := current.Description
	imageURL := current.ImageURL

	if requestData.Name != nil && *requestData.Name != "" {
		name = *requestData.Name
	}
	if requestData.Description != nil && *requestData.Description != "" {
		description = *requestData.Description
	}
	if requestData.ImageURL != nil {
		if *requestData.ImageURL == "" {
			imageURL = nil
		} else {
			imageURL = requestData.ImageURL
		}
	}
	if requestData.Slug != nil && *requestData.Slug != "" && *requestData.Slug != current.Slug {
		// Новый slug должен быть уникальным
		taken, err := slugTaken(*requestData.Slug, &profileUUID)
		if err != nil {
			log.Printf("Ошибка проверки slug: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка проверки slug"})
		}
		if taken {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Slug уже занят"})
		}
		slug = *requestData.Slug
	}

	var profile models.BusinessProfile
	err = scanProfile(db.Pool.QueryRow(ctx, `
		UPDATE business_profiles
		SET name = $1, slug = $2, description = $3, image_url = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING `+profileColumns+`
	`, name, slug, description, imageURL, profileUUID), &profile)

	if err != nil {
		log.Printf("Ошибка обновления профиля: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка обновления профиля"})
	}

	return c.JSON(fiber.Map{"profile": profile})
}

// DeleteProfile удаляет профиль бизнеса (только для администратора)
func (s *BusinessService) DeleteProfile(c fiber.Ctx) error {
	profileUUID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID профиля"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	tag, err := db.Pool.Exec(ctx, "DELETE FROM business_profiles WHERE id = $1", profileUUID)
	if err != nil {
		log.Printf("Ошибка удаления профиля: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка удаления профиля"})
	}

	if tag.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Профиль бизнеса не найден"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Профиль бизнеса удалён",
	})
}

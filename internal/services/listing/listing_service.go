package listing

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/elvinasadov/arenda-api/internal/config"
	"github.com/elvinasadov/arenda-api/internal/db"
	"github.com/elvinasadov/arenda-api/internal/models"
	"github.com/elvinasadov/arenda-api/internal/services/upload"
	"github.com/elvinasadov/arenda-api/internal/utils"
)

// ListingService представляет сервис для работы с объявлениями
type ListingService struct {
	cfg           *config.Config
	jwtService    *utils.JWTService
	uploadService *upload.UploadService
}

// NewListingService создает новый экземпляр ListingService
func NewListingService(cfg *config.Config, uploadService *upload.UploadService) *ListingService {
	return &ListingService{
		cfg:           cfg,
		jwtService:    utils.NewJWTService(cfg.JWTSecret),
		uploadService: uploadService,
	}
}

const listingColumns = `
	id, owner_id, category_id, business_profile_id, title, description,
	price_per_day, previous_price, contact_email, contact_phone,
	view_count, contact_count, is_active, created_at, updated_at
`

// scanListing сканирует строку объявления в модель
func scanListing(row pgx.Row, l *models.Listing) error {
	return row.Scan(
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
	)
}

// loadImages загружает изображения объявления в порядке position
func loadImages(ctx context.Context, listingID uuid.UUID) ([]models.ListingImage, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, listing_id, url, public_id, is_main, position, created_at
		FROM listing_images
		WHERE listing_id = $1
		ORDER BY position ASC
	`, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []models.ListingImage
	for rows.Next() {
		var img models.ListingImage
		if err := rows.Scan(
			&img.ID,
			&img.ListingID,
			&img.URL,
			&img.PublicID,
			&img.IsMain,
			&img.Position,
			&img.CreatedAt,
		); err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	return images, rows.Err()
}

// attachRelations подгружает изображения, владельца и категорию объявления
func attachRelations(ctx context.Context, l *models.Listing) {
	images, err := loadImages(ctx, l.ID)
	if err != nil {
		log.Printf("Ошибка запроса изображений: %v", err)
	}
	l.Images = images

	var owner models.UserSummary
	err = db.Pool.QueryRow(ctx, `
		SELECT id, name, email FROM users WHERE id = $1
	`, l.OwnerID).Scan(&owner.ID, &owner.Name, &owner.Email)
	if err != nil && err != pgx.ErrNoRows {
		log.Printf("Ошибка получения данных владельца: %v", err)
	}
	if err == nil {
		l.Owner = &owner
	}

	var category models.CategorySummary
	err = db.Pool.QueryRow(ctx, `
		SELECT id, name, slug, icon FROM categories WHERE id = $1
	`, l.CategoryID).Scan(&category.ID, &category.Name, &category.Slug, &category.Icon)
	if err != nil && err != pgx.ErrNoRows {
		log.Printf("Ошибка получения данных категории: %v", err)
	}
	if err == nil {
		l.Category = &category
	}
}

// GetListings возвращает список активных объявлений с пагинацией и фильтром по категории
func (s *ListingService) GetListings(c fiber.Ctx) error {
	page, limit, offset := utils.ParsePageParams(c.Query("page", "1"), c.Query("limit", "10"))
	category := c.Query("category")

	ctx, cancel := db.GetContext()
	defer cancel()

	var rows pgx.Rows
	var queryErr error
	var categoryUUID uuid.UUID
	filterByCategory := category != "" && category != "all"

	if filterByCategory {
		var err error
		categoryUUID, err = uuid.Parse(category)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID категории"})
		}
		rows, queryErr = db.Pool.Query(ctx, `
			SELECT `+listingColumns+`
			FROM listings
			WHERE is_active = TRUE AND category_id = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3
		`, categoryUUID, limit, offset)
	} else {
		rows, queryErr = db.Pool.Query(ctx, `
			SELECT `+listingColumns+`
			FROM listings
			WHERE is_active = TRUE
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2
		`, limit, offset)
	}

	if queryErr != nil {
		log.Printf("Ошибка запроса объявлений: %v", queryErr)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка получения объявлений"})
	}
	defer rows.Close()

	listings := []models.Listing{}
	for rows.Next() {
		var l models.Listing
		if err := scanListing(rows, &l); err != nil {
			log.Printf("Ошибка сканирования строки: %v", err)
			continue
		}
		listings = append(listings, l)
	}
	rows.Close()

	for i := range listings {
		attachRelations(ctx, &listings[i])
	}

	// Получаем общее количество объявлений для пагинации
	var total int
	var countErr error
	if filterByCategory {
		countErr = db.Pool.QueryRow(ctx, `
			SELECT COUNT(*) FROM listings WHERE is_active = TRUE AND category_id = $1
		`, categoryUUID).Scan(&total)
	} else {
		countErr = db.Pool.QueryRow(ctx, `
			SELECT COUNT(*) FROM listings WHERE is_active = TRUE
		`).Scan(&total)
	}
	if countErr != nil {
		log.Printf("Ошибка подсчета объявлений: %v", countErr)
	}

	return c.JSON(fiber.Map{
		"listings":    listings,
		"total":       total,
		"currentPage": page,
		"totalPages":  utils.TotalPages(total, limit),
		"limit":       limit,
	})
}

// GetStats возвращает глобальную статистику площадки
func (s *ListingService) GetStats(c fiber.Ctx) error {
	ctx, cancel := db.GetContext()
	defer cancel()

	var totalListings, totalUsers, totalViews int
	err := db.Pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM listings),
			(SELECT COUNT(*) FROM users),
			(SELECT COALESCE(SUM(view_count), 0) FROM listings)
	`).Scan(&totalListings, &totalUsers, &totalViews)

	if err != nil {
		log.Printf("Ошибка запроса статистики: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка получения статистики"})
	}

	return c.JSON(fiber.Map{
		"totalListings": totalListings,
		"totalUsers":    totalUsers,
		"totalViews":    totalViews,
	})
}

// GetListing возвращает объявление по ID и увеличивает счётчик просмотров
func (s *ListingService) GetListing(c fiber.Ctx) error {
	listingUUID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID объявления"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	// Счётчик просмотров увеличивается до ответа
	var l models.Listing
	err = scanListing(db.Pool.QueryRow(ctx, `
		UPDATE listings
		SET view_count = view_count + 1
		WHERE id = $1
		RETURNING `+listingColumns+`
	`, listingUUID), &l)

	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Объявление не найдено"})
		}
		log.Printf("Ошибка получения объявления: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка получения объявления"})
	}

	attachRelations(ctx, &l)

	return c.JSON(fiber.Map{"listing": l})
}

// CreateListing обрабатывает создание нового объявления (multipart с файлами)
func (s *ListingService) CreateListing(c fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	// Поля формы
	title := c.FormValue("title")
	description := c.FormValue("description")
	priceStr := c.FormValue("price_per_day")
	categoryStr := c.FormValue("category_id")
	contactEmail := c.FormValue("contact_email")
	contactPhone := c.FormValue("contact_phone")
	businessProfileStr := c.FormValue("business_profile_id")

	// Валидация обязательных полей
	if title == "" || description == "" || priceStr == "" || categoryStr == "" ||
		contactEmail == "" || contactPhone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Все поля обязательны"})
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Цена должна быть неотрицательным числом"})
	}

	categoryUUID, err := uuid.Parse(categoryStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID категории"})
	}

	var businessProfileID *uuid.UUID
	if businessProfileStr != "" {
		bpUUID, err := uuid.Parse(businessProfileStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID профиля бизнеса"})
		}
		businessProfileID = &bpUUID
	}

	// Файлы изображений
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	files := form.File["images"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Добавьте хотя бы одно изображение"})
	}

	for _, file := range files {
		if err := upload.ValidateFile(file); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	// Загружаем изображения в Cloudinary (всё или ничего)
	images, err := s.uploadService.UploadAll(c.Context(), files)
	if err != nil {
		log.Printf("Ошибка загрузки изображений: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Не удалось загрузить изображения"})
	}

	// Начинаем транзакцию
	ctx, cancel := db.GetContext()
	defer cancel()

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		log.Printf("Ошибка начала транзакции: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка базы данных"})
	}
	defer tx.Rollback(ctx)

	listingID := uuid.New()

	_, err = tx.Exec(ctx, `
		INSERT INTO listings (id, owner_id, category_id, business_profile_id, title, description,
			price_per_day, contact_email, contact_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, listingID, userUUID, categoryUUID, businessProfileID, title, description,
		price, contactEmail, contactPhone)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Категория или профиль бизнеса не найдены"})
		}
		log.Printf("Ошибка вставки объявления: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка сохранения объявления"})
	}

	// Вставляем изображения
	for i, img := range images {
		isMain := i == 0 // Первое изображение - основное

		_, err = tx.Exec(ctx, `
			INSERT INTO listing_images (listing_id, url, public_id, is_main, position)
			VALUES ($1, $2, $3, $4, $5)
		`, listingID, img.URL, img.PublicID, isMain, i)

		if err != nil {
			log.Printf("Ошибка вставки изображения: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка сохранения изображений"})
		}
	}

	// Фиксируем транзакцию
	if err = tx.Commit(ctx); err != nil {
		log.Printf("Ошибка фиксации транзакции: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка базы данных"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"listing_id": listingID,
		"message":    "Объявление успешно создано",
	})
}

// UpdateListing обновляет существующее объявление (частичное обновление)
func (s *ListingService) UpdateListing(c fiber.Ctx) error {
	listingUUID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID объявления"})
	}

	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Пользователь не авторизован"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	// Текущее состояние объявления
	var current models.Listing
	err = scanListing(db.Pool.QueryRow(ctx, `
		SELECT `+listingColumns+` FROM listings WHERE id = $1
	`, listingUUID), &current)
	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Объявление не найдено"})
		}
		log.Printf("Ошибка запроса объявления: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка получения объявления"})
	}

	// Проверка, что пользователь является владельцем объявления (админ может всё)
	if current.OwnerID != user.ID && !user.IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "У вас нет доступа к редактированию этого объявления"})
	}

	title := current.Title
	description := current.Description
	price := current.PricePerDay
	previousPrice := current.PreviousPrice
	categoryID := current.CategoryID
	businessProfileID := current.BusinessProfileID
	contactEmail := current.ContactEmail
	contactPhone := current.ContactPhone
	isActive := current.IsActive

	if v := c.FormValue("title"); v != "" {
		title = v
	}
	if v := c.FormValue("description"); v != "" {
		description = v
	}
	if v := c.FormValue("price_per_day"); v != "" {
		newPrice, err := strconv.ParseFloat(v, 64)
		if err != nil || newPrice < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Цена должна быть неотрицательным числом"})
		}
		// При смене цены запоминаем предыдущее значение
		if newPrice != price {
			prev := price
			previousPrice = &prev
			price = newPrice
		}
	}
	if v := c.FormValue("category_id"); v != "" {
		categoryUUID, err := uuid.Parse(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID категории"})
		}
		categoryID = categoryUUID
	}
	if v := c.FormValue("business_profile_id"); v != "" {
		bpUUID, err := uuid.Parse(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID профиля бизнеса"})
		}
		businessProfileID = &bpUUID
	}
	if v := c.FormValue("contact_email"); v != "" {
		contactEmail = v
	}
	if v := c.FormValue("contact_phone"); v != "" {
		contactPhone = v
	}
	if v := c.FormValue("is_active"); v != "" {
		isActive = v == "true"
	}

	// Новые изображения, если они есть
	var newImages []upload.UploadedImage
	form, formErr := c.MultipartForm()
	if formErr == nil && form != nil && len(form.File["images"]) > 0 {
		files := form.File["images"]
		for _, file := range files {
			if err := upload.ValidateFile(file); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
			}
		}

		newImages, err = s.uploadService.UploadAll(c.Context(), files)
		if err != nil {
			log.Printf("Ошибка загрузки изображений: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Не удалось загрузить изображения"})
		}
	}

	keepImages := c.FormValue("keep_images") == "true"

	// Начинаем транзакцию
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		log.Printf("Ошибка начала транзакции: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка базы данных"})
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE listings
		SET title = $1, description = $2, price_per_day = $3, previous_price = $4,
			category_id = $5, business_profile_id = $6, contact_email = $7,
			contact_phone = $8, is_active = $9, updated_at = NOW()
		WHERE id = $10
	`, title, description, price, previousPrice, categoryID, businessProfileID,
		contactEmail, contactPhone, isActive, listingUUID)

	if err != nil {
		log.Printf("Ошибка обновления объявления: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка обновления объявления"})
	}

	if len(newImages) > 0 {
		position := 0

		if keepImages {
			// Дописываем новые изображения после существующих
			err = tx.QueryRow(ctx, `
				SELECT COALESCE(MAX(position) + 1, 0) FROM listing_images WHERE listing_id = $1
			`, listingUUID).Scan(&position)
			if err != nil {
				log.Printf("Ошибка запроса позиции изображений: %v", err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка обновления изображений"})
			}
		} else {
			// Заменяем набор изображений целиком
			_, err = tx.Exec(ctx, "DELETE FROM listing_images WHERE listing_id = $1", listingUUID)
			if err != nil {
				log.Printf("Ошибка удаления старых изображений: %v", err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка обновления изображений"})
			}
		}

		for i, img := range newImages {
			isMain := position == 0 && i == 0

			_, err = tx.Exec(ctx, `
				INSERT INTO listing_images (listing_id, url, public_id, is_main, position)
				VALUES ($1, $2, $3, $4, $5)
			`, listingUUID, img.URL, img.PublicID, isMain, position+i)

			if err != nil {
				log.Printf("Ошибка вставки изображения: %v", err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка сохранения изображений"})
			}
		}
	}

	// Фиксируем транзакцию
	if err = tx.Commit(ctx); err != nil {
		log.Printf("Ошибка фиксации транзакции: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка базы данных"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"listing_id": listingUUID,
		"message":    "Объявление успешно обновлено",
	})
}

// DeleteListing удаляет объявление вместе с изображениями
func (s *ListingService) DeleteListing(c fiber.Ctx) error {
	listingUUID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID объявления"})
	}

	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Пользователь не авторизован"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	var ownerID uuid.UUID
	err = db.Pool.QueryRow(ctx, "SELECT owner_id FROM listings WHERE id = $1", listingUUID).Scan(&ownerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Объявление не найдено"})
		}
		log.Printf("Ошибка запроса объявления: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка получения объявления"})
	}

	// Проверка, что пользователь является владельцем объявления (админ может всё)
	if ownerID != user.ID && !user.IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "У вас нет доступа к удалению этого объявления"})
	}

	// Начинаем транзакцию
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		log.Printf("Ошибка начала транзакции: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка базы данных"})
	}
	defer tx.Rollback(ctx)

	// Сначала удаляем связанные изображения
	_, err = tx.Exec(ctx, "DELETE FROM listing_images WHERE listing_id = $1", listingUUID)
	if err != nil {
		log.Printf("Ошибка удаления изображений: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка удаления объявления"})
	}

	// Удаляем само объявление
	_, err = tx.Exec(ctx, "DELETE FROM listings WHERE id = $1", listingUUID)
	if err != nil {
		log.Printf("Ошибка удаления объявления: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка удаления объявления"})
	}

	// Фиксируем транзакцию
	if err = tx.Commit(ctx); err != nil {
		log.Printf("Ошибка фиксации транзакции: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка базы данных"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Объявление успешно удалено",
	})
}

// ContactClick фиксирует нажатие кнопки контакта по объявлению
func (s *ListingService) ContactClick(c fiber.Ctx) error {
	listingUUID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID объявления"})
	}

	userID := c.Locals("userID").(string)
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		log.Printf("Ошибка начала транзакции: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка базы данных"})
	}
	defer tx.Rollback(ctx)

	var contacts int
	err = tx.QueryRow(ctx, `
		UPDATE listings
		SET contact_count = contact_count + 1
		WHERE id = $1
		RETURNING contact_count
	`, listingUUID).Scan(&contacts)

	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Объявление не найдено"})
		}
		log.Printf("Ошибка обновления счётчика контактов: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка обновления счётчика"})
	}

	// Запоминаем, кто и когда нажал контакт
	_, err = tx.Exec(ctx, `
		INSERT INTO contact_clicks (listing_id, user_id)
		VALUES ($1, $2)
	`, listingUUID, userUUID)

	if err != nil {
		log.Printf("Ошибка записи контакта: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка записи контакта"})
	}

	if err = tx.Commit(ctx); err != nil {
		log.Printf("Ошибка фиксации транзакции: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка базы данных"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"contacts": contacts,
	})
}

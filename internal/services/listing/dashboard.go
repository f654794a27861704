package listing

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/elvinasadov/arenda-api/internal/db"
	"github.com/elvinasadov/arenda-api/internal/models"
)

// GetMyListings возвращает список объявлений текущего пользователя,
// включая неактивные
func (s *ListingService) GetMyListings(c fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	rows, err := db.Pool.Query(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, userUUID)

	if err != nil {
		log.Printf("Ошибка запроса объявлений: %v", err)
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

	return c.JSON(fiber.Map{
		"success":  true,
		"listings": listings,
	})
}

// GetListingStats возвращает статистику объявления для его владельца:
// счётчик просмотров и список нажатий контакта
func (s *ListingService) GetListingStats(c fiber.Ctx) error {
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

	// Статистика доступна только владельцу: чужое объявление выглядит как не найденное
	var viewCount, contactCount int
	err = db.Pool.QueryRow(ctx, `
		SELECT view_count, contact_count
		FROM listings
		WHERE id = $1 AND owner_id = $2
	`, listingUUID, userUUID).Scan(&viewCount, &contactCount)

	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Объявление не найдено"})
		}
		log.Printf("Ошибка запроса статистики: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка получения статистики"})
	}

	rows, err := db.Pool.Query(ctx, `
		SELECT cc.id, cc.listing_id, cc.user_id, cc.created_at, u.name, u.email
		FROM contact_clicks cc
		JOIN users u ON u.id = cc.user_id
		WHERE cc.listing_id = $1
		ORDER BY cc.created_at DESC
	`, listingUUID)

	if err != nil {
		log.Printf("Ошибка запроса контактов: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ошибка получения статистики"})
	}
	defer rows.Close()

	clicks := []models.ContactClick{}
	for rows.Next() {
		var click models.ContactClick
		var user models.UserSummary
		if err := rows.Scan(
			&click.ID,
			&click.ListingID,
			&click.UserID,
			&click.CreatedAt,
			&user.Name,
			&user.Email,
		); err != nil {
			log.Printf("Ошибка сканирования контакта: %v", err)
			continue
		}
		user.ID = click.UserID
		click.User = &user
		clicks = append(clicks, click)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats": fiber.Map{
			"view_count":     viewCount,
			"contact_count":  contactCount,
			"contact_clicks": clicks,
		},
	})
}

package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/elvinasadov/arenda-api/internal/db"
	"github.com/elvinasadov/arenda-api/internal/models"
	"github.com/elvinasadov/arenda-api/internal/utils"
)

// AuthMiddleware создаёт middleware для проверки JWT.
// Токен принимается из заголовка Authorization или из http-only cookie.
// После проверки токена пользователь загружается из базы (без хеша пароля)
// и кладётся в Locals для последующих проверок роли.
func AuthMiddleware(jwtService *utils.JWTService) fiber.Handler {
	return func(c fiber.Ctx) error {
		tokenString := ""

		authHeader := c.Get("Authorization")
		if authHeader != "" {
			// Проверяем Bearer токен
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Неверный формат заголовка Authorization",
				})
			}
			tokenString = parts[1]
		} else {
			tokenString = c.Cookies("token")
		}

		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Требуется авторизация",
			})
		}

		userID, err := jwtService.ExtractUserID(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Невалидный или просроченный токен",
			})
		}

		// Проверяем, что userID является валидным UUID
		userUUID, err := uuid.Parse(userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Неверный формат ID пользователя",
			})
		}

		// Загружаем пользователя из базы, без хеша пароля
		ctx, cancel := db.GetContext()
		defer cancel()

		var user models.User
		err = db.Pool.QueryRow(ctx, `
			SELECT id, name, email, role, created_at, updated_at
			FROM users
			WHERE id = $1
		`, userUUID).Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		)

		if err != nil {
			if err == pgx.ErrNoRows {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Пользователь не найден",
				})
			}
			log.Printf("Ошибка загрузки пользователя: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Ошибка проверки пользователя",
			})
		}

		// Добавляем пользователя в контекст
		c.Locals("userID", userID)
		c.Locals("user", &user)

		return c.Next()
	}
}

// AdminOnly пропускает только пользователей с ролью admin.
// Должен стоять после AuthMiddleware.
func AdminOnly() fiber.Handler {
	return func(c fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Требуется авторизация",
			})
		}

		if !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Требуются права администратора",
			})
		}

		return c.Next()
	}
}

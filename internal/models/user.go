package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли пользователей
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет пользователя в системе
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Хеш пароля никогда не сериализуется в ответах API
	PasswordHash string `json:"-"`
}

// IsAdmin проверяет, имеет ли пользователь роль администратора
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserSummary содержит краткие данные владельца для вложения в объявление
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

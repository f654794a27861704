package models

import (
	"time"

	"github.com/google/uuid"
)

// BusinessProfile представляет витрину бизнеса, объединяющую несколько объявлений
type BusinessProfile struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

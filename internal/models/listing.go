package models

import (
	"time"

	"github.com/google/uuid"
)

// Listing представляет объявление об аренде
type Listing struct {
	ID                uuid.UUID  `json:"id"`
	OwnerID           uuid.UUID  `json:"owner_id"`
	CategoryID        uuid.UUID  `json:"category_id"`
	BusinessProfileID *uuid.UUID `json:"business_profile_id,omitempty"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	PricePerDay       float64    `json:"price_per_day"`
	PreviousPrice     *float64   `json:"previous_price,omitempty"`
	ContactEmail      string     `json:"contact_email"`
	ContactPhone      string     `json:"contact_phone"`
	ViewCount         int        `json:"view_count"`
	ContactCount      int        `json:"contact_count"`
	IsActive          bool       `json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	Images   []ListingImage   `json:"images"`
	Owner    *UserSummary     `json:"owner,omitempty"`
	Category *CategorySummary `json:"category,omitempty"`
}

// ListingImage представляет изображение объявления
type ListingImage struct {
	ID        uuid.UUID `json:"id"`
	ListingID uuid.UUID `json:"listing_id"`
	URL       string    `json:"url"`
	PublicID  string    `json:"public_id"`
	IsMain    bool      `json:"is_main"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactClick представляет запись о нажатии кнопки контакта
type ContactClick struct {
	ID        uuid.UUID    `json:"id"`
	ListingID uuid.UUID    `json:"listing_id"`
	UserID    uuid.UUID    `json:"user_id"`
	CreatedAt time.Time    `json:"created_at"`
	User      *UserSummary `json:"user,omitempty"`
}

package db

import (
	_ "embed"
	"fmt"
	"log"
)

//go:embed schema.sql
var schemaSQL string

// seedCategories содержит стартовый набор категорий
var seedCategories = []struct {
	Name string
	Slug string
	Icon string
}{
	{"Bütün məhsullar", "all", "/svgs/all_items.svg"},
	{"Gözəllik və Sağlamlıq", "health", "/svgs/Health.svg"},
	{"Oyun konsolları", "gaming", "/svgs/game_consoles.svg"},
	{"Uşaq məhsulları", "kids", "/svgs/child.svg"},
	{"Telefon və aksesuarlar", "phones", "/svgs/phone.svg"},
	{"Kompüter və aksesuarları", "computers", "/svgs/computer.svg"},
	{"Aksesuarlar", "accessories", "/svgs/acsessuars.svg"},
	{"Kampaniyalar", "campaigns", "/svgs/kampanya.svg"},
}

// Migrate применяет схему базы данных
func Migrate() error {
	ctx, cancel := GetContext()
	defer cancel()

	if _, err := Pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ошибка при применении схемы: %w", err)
	}

	log.Println("✅ Схема базы данных применена")
	return nil
}

// SeedCategories добавляет стартовые категории, если таблица пустая
func SeedCategories() error {
	ctx, cancel := GetContext()
	defer cancel()

	var count int
	if err := Pool.QueryRow(ctx, "SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("ошибка при подсчете категорий: %w", err)
	}

	// Не трогаем уже заполненный справочник
	if count > 0 {
		return nil
	}

	for _, c := range seedCategories {
		_, err := Pool.Exec(ctx, `
			INSERT INTO categories (name, slug, icon)
			VALUES ($1, $2, $3)
			ON CONFLICT (slug) DO NOTHING
		`, c.Name, c.Slug, c.Icon)

		if err != nil {
			return fmt.Errorf("ошибка при добавлении категории %q: %w", c.Name, err)
		}
	}

	log.Printf("✅ Добавлено стартовых категорий: %d", len(seedCategories))
	return nil
}

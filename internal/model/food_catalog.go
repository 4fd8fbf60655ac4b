package model

import "time"

// FoodCatalogEntry is a shared reference food with its nutrients per 100g.
type FoodCatalogEntry struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Category  string          `json:"category" gorm:"size:100;not null;index"`
	Nutrients NutrientProfile `json:"nutritionPer100g" gorm:"embedded;embeddedPrefix:per100g_"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

package model

import "time"

// Meal slots a food entry can be logged under.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealSlots lists the meal slots in display order.
var MealSlots = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

// FoodEntry is one logged food item owned by a user.
type FoodEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"-" gorm:"not null;index:idx_food_owner_date,priority:1"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Category  string    `json:"category" gorm:"size:100;not null"`
	Amount    float64   `json:"amount" gorm:"not null"` // grams
	Unit      string    `json:"unit" gorm:"size:20;not null;default:'g'"`
	Date      string    `json:"date" gorm:"type:varchar(10);not null;index:idx_food_owner_date,priority:2"` // YYYY-MM-DD
	MealType  string    `json:"mealType" gorm:"size:20;not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

package model

import "time"

// User represents an account that can log in to the diary.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	IsAdmin      bool      `json:"isAdmin" gorm:"default:false"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`

	// Relations
	FoodEntries       []FoodEntry       `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	BloodSugarEntries []BloodSugarEntry `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

package model

import "time"

// Glucose measurement points.
const (
	MeasureFasting        = "fasting"
	MeasureAfterBreakfast = "after_breakfast"
	MeasureAfterLunch     = "after_lunch"
	MeasureAfterDinner    = "after_dinner"
)

// BloodSugarEntry is one glucose reading in mmol/L. A user has at most one
// reading per date and measurement type.
type BloodSugarEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"-" gorm:"not null;uniqueIndex:idx_bs_owner_date_type,priority:1"`
	Date      string    `json:"date" gorm:"type:varchar(10);not null;uniqueIndex:idx_bs_owner_date_type,priority:2"`
	Type      string    `json:"type" gorm:"size:20;not null;uniqueIndex:idx_bs_owner_date_type,priority:3"`
	Value     float64   `json:"value" gorm:"not null"`
	Time      *string   `json:"time,omitempty" gorm:"size:5"` // HH:mm
	Note      *string   `json:"note,omitempty" gorm:"size:500"`
	MealType  *string   `json:"mealType,omitempty" gorm:"size:20"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

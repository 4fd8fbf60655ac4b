// Package glucose classifies blood-sugar readings against gestational reference ranges.
package glucose

import "dailyfood/internal/model"

// Reading states.
const (
	StatusNormal = "normal"
	StatusHigh   = "high"
	StatusLow    = "low"
)

// Reference thresholds in mmol/L.
const (
	LowerBound        = 3.9
	FastingUpperBound = 5.6
	PostMealCeiling   = 7.8
)

// Result is the classification of a single reading.
type Result struct {
	Status string `json:"status"`
	Label  string `json:"label"`
}

var labels = map[string]string{
	StatusNormal: "Normal",
	StatusHigh:   "High",
	StatusLow:    "Low",
}

// Classify rates value for the given measurement type. Fasting readings above 5.6
// are high; post-meal readings from 7.8 on are high; anything under 3.9 is low.
func Classify(value float64, measurementType string) Result {
	status := StatusNormal
	switch {
	case value < LowerBound:
		status = StatusLow
	case measurementType == model.MeasureFasting && value > FastingUpperBound:
		status = StatusHigh
	case measurementType != model.MeasureFasting && value >= PostMealCeiling:
		status = StatusHigh
	}
	return Result{Status: status, Label: labels[status]}
}

// MealSlotFor returns the meal a post-meal measurement refers to.
func MealSlotFor(measurementType string) (string, bool) {
	switch measurementType {
	case model.MeasureAfterBreakfast:
		return model.MealBreakfast, true
	case model.MeasureAfterLunch:
		return model.MealLunch, true
	case model.MeasureAfterDinner:
		return model.MealDinner, true
	}
	return "", false
}

package model

// NutrientProfile is the fixed set of tracked nutrients. Depending on context the
// values are either per 100g of a food or absolute amounts.
type NutrientProfile struct {
	Calories float64 `json:"calories" validate:"gte=0"` // kcal
	Protein  float64 `json:"protein" validate:"gte=0"`  // g
	Fat      float64 `json:"fat" validate:"gte=0"`      // g
	Carbs    float64 `json:"carbs" validate:"gte=0"`    // g
	Fiber    float64 `json:"fiber" validate:"gte=0"`    // g
	Calcium  float64 `json:"calcium" validate:"gte=0"`  // mg
	Iron     float64 `json:"iron" validate:"gte=0"`     // mg
	Folate   float64 `json:"folate" validate:"gte=0"`   // µg
	VitaminC float64 `json:"vitaminC" validate:"gte=0"` // mg
	VitaminA float64 `json:"vitaminA" validate:"gte=0"` // µg
}

package nutrition

import "dailyfood/internal/model"

const fieldCount = 10

// Nutrient keys in display order, matching the JSON field names.
var nutrientKeys = [fieldCount]string{
	"calories", "protein", "fat", "carbs", "fiber",
	"calcium", "iron", "folate", "vitaminC", "vitaminA",
}

var nutrientUnits = [fieldCount]string{
	"kcal", "g", "g", "g", "g",
	"mg", "mg", "µg", "mg", "µg",
}

func values(p model.NutrientProfile) [fieldCount]float64 {
	return [fieldCount]float64{
		p.Calories, p.Protein, p.Fat, p.Carbs, p.Fiber,
		p.Calcium, p.Iron, p.Folate, p.VitaminC, p.VitaminA,
	}
}

func profileOf(v [fieldCount]float64) model.NutrientProfile {
	return model.NutrientProfile{
		Calories: v[0],
		Protein:  v[1],
		Fat:      v[2],
		Carbs:    v[3],
		Fiber:    v[4],
		Calcium:  v[5],
		Iron:     v[6],
		Folate:   v[7],
		VitaminC: v[8],
		VitaminA: v[9],
	}
}

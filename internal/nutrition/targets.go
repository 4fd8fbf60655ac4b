package nutrition

import (
	"math"

	"dailyfood/internal/model"
)

// PregnancyTargets are the daily goals for the second trimester.
var PregnancyTargets = model.NutrientProfile{
	Calories: 2200,
	Protein:  75,
	Fat:      73,
	Carbs:    275,
	Fiber:    28,
	Calcium:  1000,
	Iron:     27,
	Folate:   600,
	VitaminC: 85,
	VitaminA: 770,
}

// Calendar day states.
const (
	StatusGood    = "good"
	StatusWarning = "warning"
	StatusNone    = "none"
)

// goodCalorieShare is the share of the calorie target at which a day counts as good.
const goodCalorieShare = 80

// Percentage is the progress-bar fill for actual against target, capped at 100.
// A zero target has no ceiling and reports 100.
func Percentage(actual, target float64) int {
	if target == 0 {
		return 100
	}
	return int(math.Round(math.Min(100, actual/target*100)))
}

// Progress is one nutrient compared against its target.
type Progress struct {
	Nutrient      string  `json:"nutrient"`
	Unit          string  `json:"unit"`
	Actual        float64 `json:"actual"`
	Target        float64 `json:"target"`
	Percentage    int     `json:"percentage"`
	RawPercentage float64 `json:"rawPercentage"`
	Over          bool    `json:"over"`
}

// Compare reports every nutrient of total against targets in display order.
func Compare(total, targets model.NutrientProfile) []Progress {
	actual := values(total)
	goal := values(targets)
	out := make([]Progress, 0, fieldCount)
	for i := 0; i < fieldCount; i++ {
		raw := 100.0
		if goal[i] != 0 {
			raw = math.Round(actual[i]/goal[i]*1000) / 10
		}
		out = append(out, Progress{
			Nutrient:      nutrientKeys[i],
			Unit:          nutrientUnits[i],
			Actual:        actual[i],
			Target:        goal[i],
			Percentage:    Percentage(actual[i], goal[i]),
			RawPercentage: raw,
			Over:          actual[i] > goal[i],
		})
	}
	return out
}

// DayStatus rates a day that has food entries by its calorie intake.
func DayStatus(total, targets model.NutrientProfile) string {
	if targets.Calories == 0 || total.Calories/targets.Calories*100 >= goodCalorieShare {
		return StatusGood
	}
	return StatusWarning
}

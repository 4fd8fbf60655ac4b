// Package nutrition turns logged food amounts into nutrient totals and compares
// them with the daily pregnancy targets.
package nutrition

import (
	"strings"

	"github.com/shopspring/decimal"

	"dailyfood/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Catalog resolves a food name to its per-100g nutrient profile.
type Catalog interface {
	Lookup(name string) (model.NutrientProfile, bool)
}

// CatalogIndex is a case-insensitive exact-match Catalog.
type CatalogIndex map[string]model.NutrientProfile

// NewCatalogIndex indexes entries by lower-cased name. The first entry wins when
// two names only differ in case.
func NewCatalogIndex(entries []model.FoodCatalogEntry) CatalogIndex {
	idx := make(CatalogIndex, len(entries))
	for _, e := range entries {
		key := strings.ToLower(e.Name)
		if _, ok := idx[key]; !ok {
			idx[key] = e.Nutrients
		}
	}
	return idx
}

// Lookup implements Catalog.
func (c CatalogIndex) Lookup(name string) (model.NutrientProfile, bool) {
	p, ok := c[strings.ToLower(name)]
	return p, ok
}

// ComputeItem returns the absolute nutrients of a logged item. Foods missing from
// the catalog contribute nothing.
func ComputeItem(item model.FoodEntry, catalog Catalog) model.NutrientProfile {
	if catalog == nil {
		return model.NutrientProfile{}
	}
	per100, ok := catalog.Lookup(item.Name)
	if !ok {
		return model.NutrientProfile{}
	}

	ratio := decimal.NewFromFloat(item.Amount).Div(hundred)
	src := values(per100)
	var out [fieldCount]float64
	for i, v := range src {
		out[i] = decimal.NewFromFloat(v).Mul(ratio).Round(1).InexactFloat64()
	}
	return profileOf(out)
}

// Combine sums profiles field by field. The zero profile is the identity and the
// result does not depend on argument order.
func Combine(profiles ...model.NutrientProfile) model.NutrientProfile {
	var acc [fieldCount]decimal.Decimal
	for i := range acc {
		acc[i] = decimal.Zero
	}
	for _, p := range profiles {
		for i, v := range values(p) {
			acc[i] = acc[i].Add(decimal.NewFromFloat(v))
		}
	}
	var out [fieldCount]float64
	for i, d := range acc {
		out[i] = d.InexactFloat64()
	}
	return profileOf(out)
}

// DailySummary aggregates the nutrients of one day, per meal slot and in total.
type DailySummary struct {
	Date   string                           `json:"date"`
	Total  model.NutrientProfile            `json:"total"`
	ByMeal map[string]model.NutrientProfile `json:"byMeal"`
}

// Summarize builds the DailySummary for date from items. Items of other dates are
// ignored and a day without items yields zero totals.
func Summarize(items []model.FoodEntry, date string, catalog Catalog) DailySummary {
	buckets := make(map[string][]model.NutrientProfile, len(model.MealSlots))
	for _, item := range items {
		if item.Date != date {
			continue
		}
		buckets[item.MealType] = append(buckets[item.MealType], ComputeItem(item, catalog))
	}

	summary := DailySummary{
		Date:   date,
		ByMeal: make(map[string]model.NutrientProfile, len(model.MealSlots)),
	}
	meals := make([]model.NutrientProfile, 0, len(model.MealSlots))
	for _, slot := range model.MealSlots {
		total := Combine(buckets[slot]...)
		summary.ByMeal[slot] = total
		meals = append(meals, total)
	}
	summary.Total = Combine(meals...)
	return summary
}

// Package catalog holds the built-in food reference data used to seed an empty catalog.
package catalog

import "dailyfood/internal/model"

// Food categories used by the built-in catalog.
const (
	CategoryStaple    = "Staple"
	CategoryProtein   = "Protein"
	CategoryVegetable = "Vegetable"
	CategoryFruit     = "Fruit"
	CategoryNut       = "Nut"
)

// Defaults returns a fresh copy of the built-in catalog, nutrients per 100g.
func Defaults() []model.FoodCatalogEntry {
	out := make([]model.FoodCatalogEntry, len(defaults))
	copy(out, defaults)
	return out
}

var defaults = []model.FoodCatalogEntry{
	{Name: "Rice", Category: CategoryStaple, Nutrients: model.NutrientProfile{Calories: 116, Protein: 2.6, Fat: 0.3, Carbs: 25.9, Fiber: 0.3, Calcium: 7, Iron: 0.8, Folate: 3}},
	{Name: "Noodles", Category: CategoryStaple, Nutrients: model.NutrientProfile{Calories: 109, Protein: 4.2, Fat: 0.7, Carbs: 22.2, Fiber: 1.2, Calcium: 11, Iron: 1.2, Folate: 8}},
	{Name: "Whole Wheat Bread", Category: CategoryStaple, Nutrients: model.NutrientProfile{Calories: 247, Protein: 13, Fat: 4.2, Carbs: 41, Fiber: 7, Calcium: 54, Iron: 3.6, Folate: 38}},
	{Name: "Oats", Category: CategoryStaple, Nutrients: model.NutrientProfile{Calories: 389, Protein: 16.9, Fat: 6.9, Carbs: 66.3, Fiber: 10.6, Calcium: 54, Iron: 4.7, Folate: 56}},
	{Name: "Egg", Category: CategoryProtein, Nutrients: model.NutrientProfile{Calories: 144, Protein: 13.3, Fat: 8.8, Carbs: 2.8, Calcium: 56, Iron: 2, Folate: 44, VitaminA: 140}},
	{Name: "Chicken Breast", Category: CategoryProtein, Nutrients: model.NutrientProfile{Calories: 165, Protein: 31, Fat: 3.6, Calcium: 15, Iron: 0.9, Folate: 4, VitaminA: 9}},
	{Name: "Lean Pork", Category: CategoryProtein, Nutrients: model.NutrientProfile{Calories: 143, Protein: 20.3, Fat: 6.2, Calcium: 6, Iron: 2.3, Folate: 3, VitaminA: 2}},
	{Name: "Beef", Category: CategoryProtein, Nutrients: model.NutrientProfile{Calories: 250, Protein: 26, Fat: 15, Calcium: 9, Iron: 2.6, Folate: 6}},
	{Name: "Salmon", Category: CategoryProtein, Nutrients: model.NutrientProfile{Calories: 208, Protein: 20, Fat: 13, Calcium: 12, Iron: 0.8, Folate: 4, VitaminA: 12}},
	{Name: "Tofu", Category: CategoryProtein, Nutrients: model.NutrientProfile{Calories: 81, Protein: 8.1, Fat: 4.2, Carbs: 3.8, Fiber: 0.4, Calcium: 164, Iron: 1.9, Folate: 15}},
	{Name: "Milk", Category: CategoryProtein, Nutrients: model.NutrientProfile{Calories: 54, Protein: 3, Fat: 3.2, Carbs: 3.4, Calcium: 104, Iron: 0.1, Folate: 5, VitaminC: 1, VitaminA: 24}},
	{Name: "Yogurt", Category: CategoryProtein, Nutrients: model.NutrientProfile{Calories: 99, Protein: 3, Fat: 3.3, Carbs: 14, Calcium: 110, Iron: 0.1, Folate: 11, VitaminA: 27}},
	{Name: "Spinach", Category: CategoryVegetable, Nutrients: model.NutrientProfile{Calories: 23, Protein: 2.9, Fat: 0.4, Carbs: 3.6, Fiber: 2.2, Calcium: 99, Iron: 2.7, Folate: 194, VitaminC: 28, VitaminA: 469}},
	{Name: "Broccoli", Category: CategoryVegetable, Nutrients: model.NutrientProfile{Calories: 34, Protein: 2.8, Fat: 0.4, Carbs: 6.6, Fiber: 2.6, Calcium: 47, Iron: 0.7, Folate: 63, VitaminC: 89, VitaminA: 31}},
	{Name: "Carrot", Category: CategoryVegetable, Nutrients: model.NutrientProfile{Calories: 41, Protein: 0.9, Fat: 0.2, Carbs: 9.6, Fiber: 2.8, Calcium: 33, Iron: 0.3, Folate: 19, VitaminC: 5.9, VitaminA: 835}},
	{Name: "Tomato", Category: CategoryVegetable, Nutrients: model.NutrientProfile{Calories: 18, Protein: 0.9, Fat: 0.2, Carbs: 3.9, Fiber: 1.2, Calcium: 10, Iron: 0.3, Folate: 15, VitaminC: 14, VitaminA: 42}},
	{Name: "Cucumber", Category: CategoryVegetable, Nutrients: model.NutrientProfile{Calories: 16, Protein: 0.7, Fat: 0.1, Carbs: 3.6, Fiber: 0.5, Calcium: 16, Iron: 0.3, Folate: 7, VitaminC: 2.8, VitaminA: 5}},
	{Name: "Napa Cabbage", Category: CategoryVegetable, Nutrients: model.NutrientProfile{Calories: 16, Protein: 1.5, Fat: 0.2, Carbs: 3.2, Fiber: 1, Calcium: 50, Iron: 0.6, Folate: 43, VitaminC: 31, VitaminA: 2}},
	{Name: "Apple", Category: CategoryFruit, Nutrients: model.NutrientProfile{Calories: 52, Protein: 0.3, Fat: 0.2, Carbs: 13.8, Fiber: 2.4, Calcium: 6, Iron: 0.1, Folate: 3, VitaminC: 4.6, VitaminA: 3}},
	{Name: "Banana", Category: CategoryFruit, Nutrients: model.NutrientProfile{Calories: 89, Protein: 1.1, Fat: 0.3, Carbs: 22.8, Fiber: 2.6, Calcium: 5, Iron: 0.3, Folate: 20, VitaminC: 8.7, VitaminA: 3}},
	{Name: "Orange", Category: CategoryFruit, Nutrients: model.NutrientProfile{Calories: 47, Protein: 0.9, Fat: 0.1, Carbs: 11.8, Fiber: 2.4, Calcium: 40, Iron: 0.1, Folate: 30, VitaminC: 53, VitaminA: 11}},
	{Name: "Strawberry", Category: CategoryFruit, Nutrients: model.NutrientProfile{Calories: 32, Protein: 0.7, Fat: 0.3, Carbs: 7.7, Fiber: 2, Calcium: 16, Iron: 0.4, Folate: 24, VitaminC: 59, VitaminA: 1}},
	{Name: "Grape", Category: CategoryFruit, Nutrients: model.NutrientProfile{Calories: 69, Protein: 0.7, Fat: 0.2, Carbs: 18, Fiber: 0.9, Calcium: 10, Iron: 0.4, Folate: 2, VitaminC: 4, VitaminA: 3}},
	{Name: "Walnut", Category: CategoryNut, Nutrients: model.NutrientProfile{Calories: 654, Protein: 15.2, Fat: 65.2, Carbs: 13.7, Fiber: 6.7, Calcium: 98, Iron: 2.9, Folate: 98, VitaminC: 1.3, VitaminA: 1}},
	{Name: "Almond", Category: CategoryNut, Nutrients: model.NutrientProfile{Calories: 579, Protein: 21.2, Fat: 49.9, Carbs: 21.6, Fiber: 12.5, Calcium: 269, Iron: 3.7, Folate: 44}},
	{Name: "Cauliflower", Category: CategoryVegetable, Nutrients: model.NutrientProfile{Calories: 25, Protein: 2.1, Fat: 0.2, Carbs: 4.6, Fiber: 2.1, Calcium: 23, Iron: 0.4, Folate: 57, VitaminC: 61, VitaminA: 1}},
	{Name: "Duck", Category: CategoryProtein, Nutrients: model.NutrientProfile{Calories: 183, Protein: 19.7, Fat: 9.7, Calcium: 12, Iron: 2.2, Folate: 5, VitaminA: 52}},
	{Name: "Sugar Snap Peas", Category: CategoryVegetable, Nutrients: model.NutrientProfile{Calories: 81, Protein: 5.4, Fat: 0.4, Carbs: 14.4, Fiber: 5.1, Calcium: 43, Iron: 1.5, Folate: 65, VitaminC: 40, VitaminA: 38}},
	{Name: "Mixed Grain Rice", Category: CategoryStaple, Nutrients: model.NutrientProfile{Calories: 124, Protein: 3.2, Fat: 0.5, Carbs: 26.8, Fiber: 1.8, Calcium: 12, Iron: 1.1, Folate: 12}},
	{Name: "White Bread", Category: CategoryStaple, Nutrients: model.NutrientProfile{Calories: 265, Protein: 9, Fat: 3.2, Carbs: 49, Fiber: 2.7, Calcium: 105, Iron: 3.6, Folate: 38}},
	{Name: "Pigeon Egg", Category: CategoryProtein, Nutrients: model.NutrientProfile{Calories: 160, Protein: 13.5, Fat: 11.1, Carbs: 1.5, Calcium: 64, Iron: 3.2, Folate: 65, VitaminA: 294}},
	{Name: "Cherry", Category: CategoryFruit, Nutrients: model.NutrientProfile{Calories: 63, Protein: 1, Fat: 0.2, Carbs: 16, Fiber: 2.1, Calcium: 13, Iron: 0.4, Folate: 4, VitaminC: 7, VitaminA: 3}},
}

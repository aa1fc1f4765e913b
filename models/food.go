package models

// A label returned by the image recognition service
type DetectedLabel struct {
	Name       string
	Confidence float64 // 0–100
	Categories []string
}

// Calorie/serving data for a single looked-up food
type NutritionInfo struct {
	FoodName    string
	Calories    float64
	ServingQty  float64
	ServingUnit string
}

// One enriched food item in the analysis response
type FoodItemResult struct {
	Name        string  `json:"name"`
	Confidence  float64 `json:"confidence"`
	Calories    float64 `json:"calories"`
	ServingInfo string  `json:"serving_info"`
}

type AnalysisResponse struct {
	FoodItems     []FoodItemResult `json:"food_items"`
	TotalCalories float64          `json:"total_calories"`
	Success       bool             `json:"success"`
}

// Body returned for any failed request
type ErrorResponse struct {
	Detail string `json:"detail"`
}

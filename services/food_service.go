package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"calorie-estimator/models"
	"calorie-estimator/utils"

	"go.uber.org/zap"
)

type FoodService struct {
	detector  LabelDetector
	nutrition NutritionLookup
	logger    *zap.Logger
}

func NewFoodService(detector LabelDetector, nutrition NutritionLookup, logger *zap.Logger) *FoodService {
	return &FoodService{detector: detector, nutrition: nutrition, logger: logger}
}

// Analyze detects labels in the image and enriches each candidate with
// calorie data. Only a detection failure aborts; labels without nutrition
// data are dropped. Output keeps the detector's order.
func (s *FoodService) Analyze(ctx context.Context, image []byte) (*models.AnalysisResponse, error) {
	logger := utils.LoggerFromContext(ctx, s.logger)

	labels, err := s.detector.DetectLabels(ctx, image)
	if err != nil {
		return nil, err
	}
	candidates := FilterFoodLabels(labels)

	logger.Debug("labels detected",
		zap.Int("detected", len(labels)),
		zap.Int("candidates", len(candidates)),
	)

	res := &models.AnalysisResponse{
		FoodItems: make([]models.FoodItemResult, 0, len(candidates)),
		Success:   true,
	}
	for _, label := range candidates {
		name := strings.ToLower(label.Name)
		info, ok := s.nutrition.LookupNutrition(ctx, name)
		if !ok {
			logger.Debug("skipping label without nutrition data", zap.String("label", name))
			continue
		}
		res.FoodItems = append(res.FoodItems, models.FoodItemResult{
			Name:        name,
			Confidence:  label.Confidence,
			Calories:    info.Calories,
			ServingInfo: ServingInfo(info),
		})
		res.TotalCalories += info.Calories
	}

	utils.FoodItemsEnriched.Observe(float64(len(res.FoodItems)))
	logger.Info("food analysis complete",
		zap.Int("items", len(res.FoodItems)),
		zap.Float64("total_calories", res.TotalCalories),
	)
	return res, nil
}

// ServingInfo renders quantity and unit, e.g. "1 medium" or "0.5 cup".
func ServingInfo(info models.NutritionInfo) string {
	return fmt.Sprintf("%s %s", strconv.FormatFloat(info.ServingQty, 'f', -1, 64), info.ServingUnit)
}

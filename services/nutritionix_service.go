package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"calorie-estimator/config"
	"calorie-estimator/models"
	"calorie-estimator/utils"

	"go.uber.org/zap"
)

const (
	defaultServingQty  = 1
	defaultServingUnit = "serving"
)

type NutritionLookup interface {
	// LookupNutrition reports false when nothing usable came back.
	LookupNutrition(ctx context.Context, query string) (models.NutritionInfo, bool)
}

type NutritionixService struct {
	appID, apiKey string
	endpoint      string
	timezone      string
	client        *http.Client
	logger        *zap.Logger
}

func NewNutritionixService(cfg config.NutritionixConfig, logger *zap.Logger) *NutritionixService {
	return &NutritionixService{
		appID:    cfg.AppID,
		apiKey:   cfg.APIKey,
		endpoint: cfg.Endpoint,
		timezone: cfg.Timezone,
		client:   &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
	}
}

type nutrientsRequest struct {
	Query    string `json:"query"`
	Timezone string `json:"timezone"`
}

// Optional fields are pointers so omitted values can be told apart from zero
type nutrientsResponse struct {
	Foods []struct {
		FoodName    *string  `json:"food_name"`
		Calories    *float64 `json:"nf_calories"`
		ServingQty  *float64 `json:"serving_qty"`
		ServingUnit *string  `json:"serving_unit"`
	} `json:"foods"`
}

// LookupNutrition queries the natural language nutrients endpoint. Failures
// are logged and reported as not found.
func (s *NutritionixService) LookupNutrition(ctx context.Context, query string) (models.NutritionInfo, bool) {
	logger := utils.LoggerFromContext(ctx, s.logger)
	info, err := s.fetch(ctx, query)
	if err != nil {
		utils.NutritionLookups.WithLabelValues(utils.LookupError).Inc()
		logger.Warn("nutrition lookup failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return models.NutritionInfo{}, false
	}
	if info == nil {
		utils.NutritionLookups.WithLabelValues(utils.LookupNotFound).Inc()
		logger.Info("no nutrition match", zap.String("query", query))
		return models.NutritionInfo{}, false
	}
	utils.NutritionLookups.WithLabelValues(utils.LookupFound).Inc()
	return *info, true
}

// fetch returns nil, nil when the service answered but matched no foods,
// either with an empty list or a 404.
func (s *NutritionixService) fetch(ctx context.Context, query string) (*models.NutritionInfo, error) {
	b, err := json.Marshal(nutrientsRequest{Query: query, Timezone: s.timezone})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal nutrients payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create nutrients request: %w", err)
	}
	req.Header.Set("x-app-id", s.appID)
	req.Header.Set("x-app-key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Nutritionix: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Nutritionix response: %w", err)
	}
	// 404 is Nutritionix for "couldn't match any of your foods"
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("nutritionix API error %d: %s", resp.StatusCode, string(body))
	}

	var nr nutrientsResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return nil, fmt.Errorf("failed to parse Nutritionix JSON: %w", err)
	}
	if len(nr.Foods) == 0 {
		return nil, nil
	}

	f := nr.Foods[0]
	info := &models.NutritionInfo{
		ServingQty:  defaultServingQty,
		ServingUnit: defaultServingUnit,
	}
	if f.FoodName != nil {
		info.FoodName = *f.FoodName
	}
	if f.Calories != nil {
		info.Calories = *f.Calories
	}
	if f.ServingQty != nil {
		info.ServingQty = *f.ServingQty
	}
	if f.ServingUnit != nil {
		info.ServingUnit = *f.ServingUnit
	}
	return info, nil
}

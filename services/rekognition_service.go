package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"calorie-estimator/models"
	"calorie-estimator/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

const (
	MaxLabels     = 20
	MinConfidence = 60
)

var ErrEmptyImage = errors.New("image is empty")

// Categories that mark a label as something edible
var foodCategories = map[string]struct{}{
	"Food":     {},
	"Drink":    {},
	"Beverage": {},
}

type LabelDetector interface {
	DetectLabels(ctx context.Context, image []byte) ([]models.DetectedLabel, error)
}

// subset of *rekognition.Client we depend on
type rekognitionAPI interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

type RekognitionService struct {
	client rekognitionAPI
}

func NewRekognitionService(client *rekognition.Client) *RekognitionService {
	return &RekognitionService{client: client}
}

// DetectLabels sends the raw image bytes to Rekognition and returns the labels
// in the order the service ranked them.
func (r *RekognitionService) DetectLabels(ctx context.Context, image []byte) ([]models.DetectedLabel, error) {
	if len(image) == 0 {
		return nil, ErrEmptyImage
	}

	start := time.Now()
	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image},
		MaxLabels:     aws.Int32(MaxLabels),
		MinConfidence: aws.Float32(MinConfidence),
	})
	utils.LabelDetectionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		utils.LabelDetectionFailures.Inc()
		return nil, fmt.Errorf("rekognition detect labels: %w", err)
	}

	labels := make([]models.DetectedLabel, 0, len(out.Labels))
	for _, l := range out.Labels {
		labels = append(labels, toDetectedLabel(l))
	}
	return labels, nil
}

func toDetectedLabel(l types.Label) models.DetectedLabel {
	cats := make([]string, 0, len(l.Categories))
	for _, c := range l.Categories {
		if name := aws.ToString(c.Name); name != "" {
			cats = append(cats, name)
		}
	}
	return models.DetectedLabel{
		Name:       aws.ToString(l.Name),
		Confidence: float32ToFloat64(aws.ToFloat32(l.Confidence)),
		Categories: cats,
	}
}

// float32ToFloat64 keeps the shortest decimal of the float32, so 95.12
// stays 95.12 instead of 95.12000274658203.
func float32ToFloat64(f float32) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'f', -1, 32), 64)
	if err != nil {
		return float64(f)
	}
	return v
}

// FilterFoodLabels keeps labels tagged Food, Drink or Beverage. When nothing
// matches the full list is returned so the caller still has candidates.
func FilterFoodLabels(labels []models.DetectedLabel) []models.DetectedLabel {
	food := make([]models.DetectedLabel, 0, len(labels))
	for _, l := range labels {
		if isFoodLabel(l) {
			food = append(food, l)
		}
	}
	if len(food) == 0 {
		return labels
	}
	return food
}

func isFoodLabel(l models.DetectedLabel) bool {
	for _, c := range l.Categories {
		if _, ok := foodCategories[c]; ok {
			return true
		}
	}
	return false
}

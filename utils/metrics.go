package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Nutrition lookup outcomes
const (
	LookupFound    = "found"
	LookupNotFound = "not_found"
	LookupError    = "error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	LabelDetectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "label_detection_duration_seconds",
			Help:    "Duration of image label detection calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	LabelDetectionFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "label_detection_failures_total",
			Help: "Total number of failed image label detection calls",
		},
	)

	NutritionLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrition_lookups_total",
			Help: "Total number of nutrition lookups by outcome",
		},
		[]string{"outcome"},
	)

	FoodItemsEnriched = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "food_items_enriched",
			Help:    "Number of food items returned per analysis",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20},
		},
	)
)

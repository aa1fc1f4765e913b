package routes

import (
	"time"

	"calorie-estimator/controllers"
	"calorie-estimator/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Options struct {
	AllowedOrigins []string
	MaxUploadBytes int64
}

func SetupRouter(food controllers.FoodAnalyzer, logger *zap.Logger, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.Metrics())
	r.Use(middlewares.Recovery(logger))

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  opts.AllowedOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middlewares.RequestIDHeader},
			ExposeHeaders: []string{middlewares.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	if opts.MaxUploadBytes > 0 {
		r.MaxMultipartMemory = opts.MaxUploadBytes
	}

	fc := controllers.NewFoodController(food, opts.MaxUploadBytes)
	r.POST("/analyze-food", fc.AnalyzeFood)

	r.GET("/health", controllers.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

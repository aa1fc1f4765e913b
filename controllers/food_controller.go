package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"calorie-estimator/models"
	"calorie-estimator/services"
	"calorie-estimator/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Multipart field carrying the image
const UploadField = "file"

type FoodAnalyzer interface {
	Analyze(ctx context.Context, image []byte) (*models.AnalysisResponse, error)
}

type FoodController struct {
	Analyzer       FoodAnalyzer
	MaxUploadBytes int64
}

func NewFoodController(a FoodAnalyzer, maxUploadBytes int64) *FoodController {
	return &FoodController{Analyzer: a, MaxUploadBytes: maxUploadBytes}
}

// POST /analyze-food  multipart: file=<image>
func (fc *FoodController) AnalyzeFood(c *gin.Context) {
	logger := utils.LoggerFromContext(c.Request.Context(), nil)

	image, status, err := fc.readUpload(c)
	if err != nil {
		abortWithDetail(c, status, err)
		return
	}

	res, err := fc.Analyzer.Analyze(c.Request.Context(), image)
	if err != nil {
		if errors.Is(err, services.ErrEmptyImage) {
			abortWithDetail(c, http.StatusBadRequest, err)
			return
		}
		logger.Error("food analysis failed", zap.Error(err))
		abortWithDetail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// readUpload returns the image bytes, or the status to answer with.
func (fc *FoodController) readUpload(c *gin.Context) ([]byte, int, error) {
	if fc.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, fc.MaxUploadBytes)
	}

	fh, err := c.FormFile(UploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return nil, http.StatusRequestEntityTooLarge, fmt.Errorf("upload exceeds %d bytes", fc.MaxUploadBytes)
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			return nil, http.StatusUnprocessableEntity, fmt.Errorf("multipart field %q is required", UploadField)
		default:
			return nil, http.StatusBadRequest, fmt.Errorf("invalid upload: %w", err)
		}
	}

	f, err := fh.Open()
	if err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	image, err := io.ReadAll(f)
	if err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(image) == 0 {
		return nil, http.StatusBadRequest, services.ErrEmptyImage
	}
	return image, http.StatusOK, nil
}

func abortWithDetail(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, models.ErrorResponse{Detail: err.Error()})
}

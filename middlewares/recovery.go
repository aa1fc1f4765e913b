package middlewares

import (
	"fmt"
	"net/http"

	"calorie-estimator/models"
	"calorie-estimator/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panic into a 500 with the same {"detail"} body as any
// other fatal error.
func Recovery(base *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		detail := fmt.Sprint(rec)
		if detail == "" {
			detail = "internal server error"
		}
		utils.LoggerFromContext(c.Request.Context(), base).Error("panic recovered",
			zap.String("path", c.Request.URL.Path),
			zap.String("panic", detail),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Detail: detail})
	})
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ZenithX9271/SolarPowerEvaluator/internal/api/models"
)

// Recovery converts panics into the standard error envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "An unexpected error occurred"
		if s, ok := recovered.(string); ok {
			msg = s
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: msg,
			},
		})
		c.Abort()
	})
}

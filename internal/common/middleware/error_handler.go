package middleware

import (
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/errors"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler middleware catches panics and converts them to proper error responses
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
				)
				appErr := errors.Internal("internal server error", "")
				c.AbortWithStatusJSON(appErr.Status, appErr)
			}
		}()
		c.Next()
	}
}

// JSONErrorResponse wraps errors in consistent JSON format
func JSONErrorResponse(c *gin.Context, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		details := ""
		if err != nil {
			details = err.Error()
		}
		appErr = errors.Internal("internal server error", details)
	}

	c.JSON(appErr.Status, appErr)
}

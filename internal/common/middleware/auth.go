package middleware

import (
	"strconv"
	"strings"

	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/errors"
	"github.com/gin-gonic/gin"
)

// AuthRequired middleware checks for valid session or bearer token
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := identityFromRequest(c); ok {
			c.Set("user_id", userID)
			c.Next()
			return
		}

		appErr := errors.Unauthorized("missing or invalid authentication")
		c.JSON(appErr.Status, appErr)
		c.Abort()
	}
}

// OptionalAuth doesn't fail if identity is missing, but sets it if present.
// Queries behind it return null/empty bodies for anonymous callers.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := identityFromRequest(c); ok {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

// identityFromRequest resolves the opaque user handle from the session
// cookie or the Authorization header.
func identityFromRequest(c *gin.Context) (uint, bool) {
	if session, err := c.Cookie("session_id"); err == nil && session != "" {
		if id, err := strconv.ParseUint(session, 10, 32); err == nil {
			return uint(id), true
		}
	}

	token := c.GetHeader("Authorization")
	token = strings.TrimPrefix(token, "Bearer ")
	if token != "" {
		if id, err := strconv.ParseUint(token, 10, 32); err == nil {
			return uint(id), true
		}
	}

	return 0, false
}

// UserID returns the authenticated user set by AuthRequired or OptionalAuth.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

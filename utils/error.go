package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message  string        `json:"message"`
	Details  string        `json:"details,omitempty"`
	Fields   []string      `json:"fields,omitempty"`
	Redirect *RedirectHint `json:"redirect,omitempty"`
}

// RedirectHint tells the client where to navigate after an action and how long to wait first.
type RedirectHint struct {
	To      string `json:"to"`
	AfterMs int    `json:"afterMs"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: T(c, MsgInternal),
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.Int("status", status), zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// JSONErrorWithRedirect sends an error response that also carries a navigation hint.
func JSONErrorWithRedirect(c *gin.Context, status int, message string, redirect RedirectHint) {
	GetLogger().Warn(message, zap.Int("status", status), zap.String("redirect", redirect.To))
	c.JSON(status, ErrorResponse{Message: message, Redirect: &redirect})
}

// JSONValidationError reports the form fields that failed validation.
func JSONValidationError(c *gin.Context, message string, fields []string) {
	GetLogger().Debug("validation failed", zap.Strings("fields", fields))
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message, Fields: fields})
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"camerastore/models"
	"camerastore/services/session"
	"camerastore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	sessionKey = "session"
	tokenKey   = "sessionToken"
)

// RequireSession rejects requests without a live session with 401 and a
// redirect hint to the login view.
func RequireSession(sessions session.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			abortLogin(c)
			return
		}

		s, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrInvalidToken) || errors.Is(err, session.ErrSessionNotFound) {
				zap.L().Debug("session rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
				abortLogin(c)
				return
			}
			zap.L().Error("session lookup failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorResponse{
				Message: utils.T(c, utils.MsgInternal),
			})
			return
		}

		c.Set(sessionKey, s)
		c.Set(tokenKey, token)
		c.Next()
	}
}

func abortLogin(c *gin.Context) {
	redirect := utils.Redirect(utils.LoginPath, 0)
	c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
		Message:  utils.T(c, utils.MsgLoginRequired),
		Redirect: &redirect,
	})
}

// BearerToken returns the token from the Authorization header, or "".
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// CurrentSession returns the session attached by RequireSession.
func CurrentSession(c *gin.Context) (*models.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*models.Session)
	return s, ok && s != nil
}

// SessionToken returns the raw token accepted by RequireSession.
func SessionToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}

package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/memoriam-app/memoriam/internal/logging"
)

const (
	ctxUserID     = "userID"
	sessionCookie = "memoriam_session"
)

// RequestLogger logs one line per request with method, path, status and
// duration.
func RequestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// bearerAuth guards API routes with an Authorization: Bearer token and puts
// the resolved user id into the request context.
func (s *Server) bearerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		userID, err := s.auth.UserID(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ctxUserID, userID)
		c.Next()
	}
}

// currentUserID returns the id placed by bearerAuth.
func currentUserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

// sessionAuthed reports whether the browser carries a valid session cookie.
func (s *Server) sessionAuthed(c *gin.Context) bool {
	token, err := c.Cookie(sessionCookie)
	if err != nil || token == "" {
		return false
	}
	_, err = s.auth.UserID(token)
	return err == nil
}

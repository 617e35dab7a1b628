package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const usernameKey = "username"

// RequireAuth gates protected routes. The access token comes from the
// accessToken cookie or an Authorization bearer header; a missing token is
// 401, a bad or expired one is 403.
func (s *Service) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(accessCookie)
		if token == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				token = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		username, err := s.VerifyToken(token, AccessToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}
		c.Set(usernameKey, username)
		c.Next()
	}
}

// Username returns the identity RequireAuth attached to the context.
func Username(c *gin.Context) string {
	return c.GetString(usernameKey)
}

package middlewares

import (
	"net/http"
	"strings"

	"paytrack/models"
	"paytrack/utils"

	"github.com/gin-gonic/gin"
)

// Auth verifies the bearer token and puts the principal on the request
// context. Handlers read it explicitly; there is no ambient session state.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		uid, ok := claims["user_id"].(float64)
		if !ok || uid <= 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		role, _ := claims["role"].(string)
		name, _ := claims["name"].(string)

		c.Set("user_id", uint(uid))
		c.Set("name", name)
		c.Set("role", role)
		c.Next()
	}
}

// RequireRole gates a route group to a single role.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, _ := c.Get("role")
		if got != string(role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID reads the authenticated principal set by Auth.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("user_id")
	id, _ := v.(uint)
	return id
}

func CurrentUserName(c *gin.Context) string {
	v, _ := c.Get("name")
	s, _ := v.(string)
	return s
}

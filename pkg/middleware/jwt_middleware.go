package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"vibecheck/pkg/utils"
)

func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("is_superuser", claims.Superuser)
		c.Next()
	}
}

// SuperuserMiddleware guards admin-only groups; it must run after
// JWTAuthMiddleware.
func SuperuserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_superuser") {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

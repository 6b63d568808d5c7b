package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/coreteam/payroll-app/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and exposes the decoded email
// claim to downstream handlers via the request context. It does not touch
// the user table; role resolution happens in the role gate.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization header missing"))
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid authorization header format"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired token"))
			c.Abort()
			return
		}

		if claims.Email == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("token has no email claim"))
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Next()
	}
}

package middlewares

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/coreteam/payroll-app/models"
	"github.com/coreteam/payroll-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequireRole resolves the caller's stored role by the email placed into
// the context by AuthMiddleware and rejects the request unless it matches
// exactly. The lookup runs on every gated request, so a role change takes
// effect on the caller's next request even if their token predates it.
//
// There is no role hierarchy: an admin does not pass the HR gate and an
// HR does not pass the admin gate.
func RequireRole(db *gorm.DB, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		emailVal, exists := c.Get("email")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
			c.Abort()
			return
		}

		email, ok := emailVal.(string)
		if !ok || email == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
			c.Abort()
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Unknown caller means no privilege, not a server error
				utils.RespondError(c, http.StatusForbidden, fmt.Errorf("%s access required", role))
				c.Abort()
				return
			}
			utils.ErrorLogger.Printf("role lookup failed for %s: %v", email, err)
			utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
			c.Abort()
			return
		}

		if user.Role != role {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("%s access required", role))
			c.Abort()
			return
		}

		c.Next()
	}
}

func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return RequireRole(db, models.RoleAdmin)
}

func RequireHR(db *gorm.DB) gin.HandlerFunc {
	return RequireRole(db, models.RoleHR)
}

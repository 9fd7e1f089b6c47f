package middleware

import (
	"net/http"
	"strings"

	"github.com/tsakshay01/expense-tracker/internal/models"
	"github.com/tsakshay01/expense-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CurrentUserKey is the gin context key the authenticated user is stored under.
const CurrentUserKey = "currentUser"

// AuthMiddleware verifies the bearer token and attaches the identified user
// to the request context. The password hash never leaves this package: the
// user model serializes without it.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, "Not authorized, no token provided")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			util.Error(c, http.StatusUnauthorized, "Not authorized, token failed or expired")
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				util.Error(c, http.StatusUnauthorized, "Not authorized, token failed or expired")
			} else {
				util.ServerError(c, "load user for token", err)
			}
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, &user)
		c.Next()
	}
}

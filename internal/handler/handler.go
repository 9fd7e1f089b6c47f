// Package handler implements the HTTP endpoints. Every handler assumes the
// auth middleware has already attached the caller to the gin context.
package handler

import (
	"net/http"

	"github.com/tsakshay01/expense-tracker/internal/middleware"
	"github.com/tsakshay01/expense-tracker/internal/models"
	"github.com/tsakshay01/expense-tracker/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated user out of the gin context. When it is
// missing the middleware was not installed on the route; respond 401 and abort.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(middleware.CurrentUserKey)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized, no token provided")
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, "Not authorized, no token provided")
		return nil, false
	}
	return user, true
}

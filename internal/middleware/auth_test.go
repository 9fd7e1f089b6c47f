package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tsakshay01/expense-tracker/internal/database"
	"github.com/tsakshay01/expense-tracker/internal/middleware"
	"github.com/tsakshay01/expense-tracker/internal/models"
	"github.com/tsakshay01/expense-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func setupAuthTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))

	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(testSecret, db), func(c *gin.Context) {
		v, _ := c.Get(middleware.CurrentUserKey)
		user := v.(*models.User)
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	return r, db
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r, db := setupAuthTest(t)

	user := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	token, err := util.GenerateToken(testSecret, user.ID, time.Hour)
	require.NoError(t, err)

	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestAuthMiddleware_MissingOrMalformedHeader(t *testing.T) {
	r, _ := setupAuthTest(t)

	for _, header := range []string{"", "Bearer", "Token abc", "abc"} {
		w := get(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Contains(t, w.Body.String(), "no token provided", "header %q", header)
	}
}

func TestAuthMiddleware_BadToken(t *testing.T) {
	r, _ := setupAuthTest(t)

	w := get(r, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token failed or expired")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r, db := setupAuthTest(t)

	user := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	now := time.Now()
	claims := &util.Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token failed or expired")
}

func TestAuthMiddleware_UnknownUser(t *testing.T) {
	r, _ := setupAuthTest(t)

	token, err := util.GenerateToken(testSecret, 9999, time.Hour)
	require.NoError(t, err)

	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token failed or expired")
}

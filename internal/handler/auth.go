package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/tsakshay01/expense-tracker/internal/models"
	"github.com/tsakshay01/expense-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost is the adaptive hashing work factor for stored passwords.
const bcryptCost = 10

// AuthHandler serves registration and login.
type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthHandler(db *gorm.DB, jwtSecret string, ttlHours int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 1
	}
	return &AuthHandler{
		DB:        db,
		JWTSecret: jwtSecret,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResp is the body returned by both register and login.
type authResp struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// Register creates a user and returns a fresh token for it.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Please enter all fields: username, email, and password.")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Username == "" || req.Email == "" || req.Password == "" {
		util.Error(c, http.StatusBadRequest, "Please enter all fields: username, email, and password.")
		return
	}
	if len(req.Username) < 3 {
		util.Error(c, http.StatusBadRequest, "Username must be at least 3 characters.")
		return
	}
	if err := util.ValidateEmail(req.Email); err != nil {
		util.Error(c, http.StatusBadRequest, "Please fill a valid email address.")
		return
	}
	if len(req.Password) < 6 {
		util.Error(c, http.StatusBadRequest, "Password must be at least 6 characters.")
		return
	}

	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("email = ?", req.Email).
		Count(&count).Error; err != nil {
		util.ServerError(c, "check existing email", err)
		return
	}
	if count > 0 {
		util.Error(c, http.StatusBadRequest, "User with this email already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		util.ServerError(c, "hash password", err)
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := h.DB.Create(&user).Error; err != nil {
		// the unique indexes on username/email catch races the pre-check missed
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			util.Error(c, http.StatusBadRequest, "Username or Email already taken.")
			return
		}
		util.ServerError(c, "create user", err)
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, user.ID, h.TokenTTL)
	if err != nil {
		util.ServerError(c, "generate token", err)
		return
	}

	c.JSON(http.StatusCreated, authResp{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	})
}

// Login checks credentials and returns a token. Unknown email and wrong
// password answer with the same body so account existence never leaks.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Please enter email and password.")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		util.Error(c, http.StatusBadRequest, "Please enter email and password.")
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusUnauthorized, "Invalid email or password")
		} else {
			util.ServerError(c, "look up user", err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		util.Error(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, user.ID, h.TokenTTL)
	if err != nil {
		util.ServerError(c, "generate token", err)
		return
	}

	c.JSON(http.StatusOK, authResp{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	})
}

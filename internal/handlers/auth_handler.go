package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/washapp/carwash-api/internal/config"
	"github.com/washapp/carwash-api/internal/httperr"
	"github.com/washapp/carwash-api/internal/middleware"
	"github.com/washapp/carwash-api/internal/models"
	"github.com/washapp/carwash-api/internal/validation"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req validation.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Format data tidak valid")
		return
	}
	if err := req.Validate(); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "Email sudah terdaftar")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	var role models.Role
	if err := h.db.Where("name = ?", string(models.RoleUser)).First(&role).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		RoleID:   &role.ID,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}
	user.Role = &role

	h.sendToken(c, http.StatusCreated, &user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req validation.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Format data tidak valid")
		return
	}
	if err := req.Validate(); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := h.db.Preload("Role").
		Where("email = ?", req.Email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "Email atau password salah")
			return
		}
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "Email atau password salah")
		return
	}

	h.sendToken(c, http.StatusOK, &user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.config.CookieSecure, true)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logout berhasil",
	})
}

// --------- JWT ---------

func (h *AuthHandler) sendToken(c *gin.Context, status int, user *models.User) {
	token, err := SignToken(user, h.config)
	if err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	maxAge := h.config.JWTExpiresHours * 3600
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", h.config.CookieSecure, true)

	c.JSON(status, gin.H{
		"status": "success",
		"token":  token,
		"data": gin.H{
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

func SignToken(user *models.User, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": string(user.RoleName()),
		"exp":  time.Now().Add(time.Duration(cfg.JWTExpiresHours) * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

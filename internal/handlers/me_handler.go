package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/washapp/carwash-api/internal/httpresp"
	"github.com/washapp/carwash-api/internal/middleware"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user := middleware.CurrentUser(c)

	httpresp.OK(c, "User berhasil ditemukan", gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     string(user.RoleName()),
	})
}

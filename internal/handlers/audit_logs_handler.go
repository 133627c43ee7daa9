package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/washapp/carwash-api/internal/httperr"
	"github.com/washapp/carwash-api/internal/httpresp"
	"github.com/washapp/carwash-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List é restrito a admin via rota.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, limit := pageParams(c)

	q := h.db.Model(&models.AuditLog{})

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.Page(c, "Audit logs berhasil ditemukan", logs, page, limit, total)
}

package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/washapp/carwash-api/internal/httperr"
	"github.com/washapp/carwash-api/internal/httpresp"
	"github.com/washapp/carwash-api/internal/models"
	"github.com/washapp/carwash-api/internal/validation"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

func (h *ServiceHandler) List(c *gin.Context) {
	page, limit := pageParams(c)

	var total int64
	if err := h.db.Model(&models.Service{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	var services []models.Service
	if err := h.db.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&services).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	if len(services) == 0 {
		httperr.NotFound(c, "Tidak ada layanan yang ditemukan")
		return
	}

	httpresp.Page(c, "Semua layanan berhasil ditemukan", services, page, limit, total)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Service tidak ditemukan")
			return
		}
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.OK(c, "Detail layanan berhasil ditemukan", service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req validation.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Format data tidak valid")
		return
	}
	if err := req.Validate(); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.Created(c, "Service berhasil dibuat", service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req validation.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Format data tidak valid")
		return
	}
	if err := req.Validate(); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Service tidak ditemukan")
			return
		}
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Price = req.Price

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.OK(c, "Service berhasil diperbarui", service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Service tidak ditemukan")
			return
		}
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.OK(c, "Service berhasil dihapus", nil)
}

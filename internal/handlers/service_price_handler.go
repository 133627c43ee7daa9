package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/washapp/carwash-api/internal/httperr"
	"github.com/washapp/carwash-api/internal/httpresp"
	"github.com/washapp/carwash-api/internal/models"
	"github.com/washapp/carwash-api/internal/validation"
)

type ServicePriceHandler struct {
	db *gorm.DB
}

func NewServicePriceHandler(db *gorm.DB) *ServicePriceHandler {
	return &ServicePriceHandler{db: db}
}

func (h *ServicePriceHandler) List(c *gin.Context) {
	var prices []models.ServicePrice
	if err := h.db.
		Preload("Service").
		Order("created_at DESC").
		Find(&prices).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.OK(c, "Daftar harga berhasil ditemukan", prices)
}

func (h *ServicePriceHandler) Get(c *gin.Context) {
	var price models.ServicePrice
	if err := h.db.
		Preload("Service").
		First(&price, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Service price tidak ditemukan")
			return
		}
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.OK(c, "Detail harga berhasil ditemukan", price)
}

func (h *ServicePriceHandler) Create(c *gin.Context) {
	var req validation.ServicePriceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Format data tidak valid")
		return
	}
	if err := req.Validate(); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	serviceID, _ := uuid.Parse(req.ServiceID)

	var count int64
	if err := h.db.Model(&models.Service{}).Where("id = ?", serviceID).Count(&count).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}
	if count == 0 {
		httperr.NotFound(c, "Service tidak ditemukan")
		return
	}

	price := models.ServicePrice{
		ServiceID: serviceID,
		CarType:   req.CarType,
		Price:     req.Price,
	}

	if err := h.db.Create(&price).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.Created(c, "Service price berhasil dibuat", price)
}

func (h *ServicePriceHandler) Update(c *gin.Context) {
	var req validation.ServicePriceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Format data tidak valid")
		return
	}
	if err := req.Validate(); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	var price models.ServicePrice
	if err := h.db.First(&price, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Service price tidak ditemukan")
			return
		}
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	serviceID, _ := uuid.Parse(req.ServiceID)

	var count int64
	if err := h.db.Model(&models.Service{}).Where("id = ?", serviceID).Count(&count).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}
	if count == 0 {
		httperr.NotFound(c, "Service tidak ditemukan")
		return
	}

	price.ServiceID = serviceID
	price.CarType = req.CarType
	price.Price = req.Price

	if err := h.db.Save(&price).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.OK(c, "Service price berhasil diperbarui", price)
}

func (h *ServicePriceHandler) Delete(c *gin.Context) {
	var price models.ServicePrice
	if err := h.db.First(&price, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Service price tidak ditemukan")
			return
		}
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	if err := h.db.Delete(&price).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.OK(c, "Service price berhasil dihapus", nil)
}

package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/washapp/carwash-api/internal/httperr"
	"github.com/washapp/carwash-api/internal/httpresp"
	"github.com/washapp/carwash-api/internal/middleware"
	"github.com/washapp/carwash-api/internal/models"
	"github.com/washapp/carwash-api/internal/validation"
)

type TestimonialHandler struct {
	db *gorm.DB
}

func NewTestimonialHandler(db *gorm.DB) *TestimonialHandler {
	return &TestimonialHandler{db: db}
}

func (h *TestimonialHandler) List(c *gin.Context) {
	page, limit := pageParams(c)

	var total int64
	if err := h.db.Model(&models.Testimonial{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	var testimonials []models.Testimonial
	if err := h.db.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "email")
		}).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&testimonials).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.Page(c, "Daftar testimoni berhasil ditemukan", testimonials, page, limit, total)
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req validation.TestimonialInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Format data tidak valid")
		return
	}
	if err := req.Validate(); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	var count int64
	if err := h.db.Model(&models.Testimonial{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "User sudah memiliki testimoni")
		return
	}

	testimonial := models.Testimonial{
		UserID:  user.ID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := h.db.Create(&testimonial).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.Created(c, "Testimoni berhasil dibuat", testimonial)
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var testimonial models.Testimonial
	if err := h.db.
		Where("user_id = ?", user.ID).
		First(&testimonial).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Testimoni tidak ditemukan")
			return
		}
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	var req validation.TestimonialInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Format data tidak valid")
		return
	}
	if err := req.Validate(); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	testimonial.Rating = req.Rating
	testimonial.Comment = req.Comment

	if err := h.db.Save(&testimonial).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.OK(c, "Testimoni berhasil diperbarui", testimonial)
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var testimonial models.Testimonial
	if err := h.db.
		Where("user_id = ?", user.ID).
		First(&testimonial).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Testimoni tidak ditemukan")
			return
		}
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	if err := h.db.Delete(&testimonial).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.OK(c, "Testimoni berhasil dihapus", nil)
}

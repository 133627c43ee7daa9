package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/washapp/carwash-api/internal/audit"
	domain "github.com/washapp/carwash-api/internal/domain/booking"
	"github.com/washapp/carwash-api/internal/httperr"
	"github.com/washapp/carwash-api/internal/httpresp"
	"github.com/washapp/carwash-api/internal/middleware"
	"github.com/washapp/carwash-api/internal/models"
	ucBooking "github.com/washapp/carwash-api/internal/usecase/booking"
	"github.com/washapp/carwash-api/internal/validation"
)

type BookingHandler struct {
	db       *gorm.DB
	createUC *ucBooking.CreateBooking
	audit    *audit.Dispatcher
}

func NewBookingHandler(
	db *gorm.DB,
	createUC *ucBooking.CreateBooking,
	dispatcher *audit.Dispatcher,
) *BookingHandler {
	return &BookingHandler{
		db:       db,
		createUC: createUC,
		audit:    dispatcher,
	}
}

// --------- Requests ---------

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req validation.BookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Format data tidak valid")
		return
	}

	booking, payment, err := h.createUC.Execute(c.Request.Context(), user.ID, req)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			httperr.BadRequest(c, verr.Message)
		case httperr.IsBusiness(err, "daily_quota_exceeded"):
			httperr.BadRequest(c, "Maksimal 2 booking per hari.")
		case httperr.IsBusiness(err, "plate_in_use"):
			httperr.BadRequest(c, "Plat nomor sudah digunakan hari ini")
		case httperr.IsBusiness(err, "service_price_not_found"):
			httperr.NotFound(c, "Service price tidak ditemukan")
		default:
			httperr.Internal(c, "Terjadi kesalahan pada server")
		}
		return
	}

	httpresp.Created(c, "Booking & transaksi berhasil dibuat", gin.H{
		"booking":     booking,
		"transaction": payment,
	})
}

func (h *BookingHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	q := h.db.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "email")
		}).
		Preload("User.Profile", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "user_id", "name", "phone_number", "address")
		}).
		Preload("ServicePrice", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "service_id", "car_type", "price")
		}).
		Preload("ServicePrice.Service", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Order("created_at DESC")

	if !user.IsAdmin() {
		q = q.Where("user_id = ?", user.ID)
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.OK(c, "Daftar booking berhasil ditemukan", bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)

	q := h.db.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "email")
		}).
		Preload("User.Profile").
		Preload("ServicePrice").
		Where("id = ?", c.Param("id"))

	// não-donos recebem 404, sem revelar a existência do booking
	if !user.IsAdmin() {
		q = q.Where("user_id = ?", user.ID)
	}

	var booking models.Booking
	if err := q.First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Booking not found")
			return
		}
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.OK(c, "Booking berhasil ditemukan", booking)
}

func (h *BookingHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var booking models.Booking
	if err := h.db.
		Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Booking not found")
			return
		}
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	var req validation.BookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Format data tidak valid")
		return
	}
	if err := req.Validate(time.Now()); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	servicePriceID := booking.ServicePriceID
	if req.ServicePriceID != "" {
		var count int64
		if err := h.db.Model(&models.ServicePrice{}).Where("id = ?", req.ServicePriceID).Count(&count).Error; err != nil {
			httperr.Internal(c, "Terjadi kesalahan pada server")
			return
		}
		if count == 0 {
			httperr.NotFound(c, "Service price tidak ditemukan")
			return
		}
		servicePriceID = uuidMustParse(req.ServicePriceID)
	}

	booking.ServicePriceID = servicePriceID
	booking.BookingDate = req.Date(time.Local)
	booking.BookingTime = req.BookingTime
	booking.LicensePlate = req.LicensePlate

	if err := h.db.Save(&booking).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.OK(c, "Booking updated successfully", booking)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Format data tidak valid")
		return
	}

	status := domain.Status(req.Status)
	if !status.IsValid() {
		httperr.BadRequest(c, "Invalid status value")
		return
	}

	var booking models.Booking
	if err := h.db.First(&booking, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Booking not found")
			return
		}
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	booking.Status = string(status)
	if err := h.db.Save(&booking).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "booking_status_updated",
		Entity:   "booking",
		EntityID: &booking.ID,
		Metadata: map[string]any{"status": booking.Status},
	})

	var updated models.Booking
	if err := h.db.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "email")
		}).
		Preload("User.Profile").
		First(&updated, "id = ?", booking.ID).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.OK(c, "Booking status updated successfully", updated)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	q := h.db.Where("id = ?", c.Param("id"))
	if !user.IsAdmin() {
		q = q.Where("user_id = ?", user.ID)
	}

	var booking models.Booking
	if err := q.First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Booking tidak ditemukan")
			return
		}
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	if err := h.db.Delete(&booking).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &booking.ID,
	})

	httpresp.OK(c, "Booking berhasil dihapus", nil)
}

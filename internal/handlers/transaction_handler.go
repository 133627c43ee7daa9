package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/washapp/carwash-api/internal/audit"
	"github.com/washapp/carwash-api/internal/httperr"
	"github.com/washapp/carwash-api/internal/httpresp"
	"github.com/washapp/carwash-api/internal/middleware"
	"github.com/washapp/carwash-api/internal/models"
	"github.com/washapp/carwash-api/internal/storage"
	"github.com/washapp/carwash-api/internal/validation"
)

type TransactionHandler struct {
	db    *gorm.DB
	store *storage.ImageStore
	audit *audit.Dispatcher
}

func NewTransactionHandler(
	db *gorm.DB,
	store *storage.ImageStore,
	dispatcher *audit.Dispatcher,
) *TransactionHandler {
	return &TransactionHandler{db: db, store: store, audit: dispatcher}
}

// --------- Requests ---------

// O corpo de atualização não tem campo isPaid: o flag só muda pelo
// endpoint admin de status de pagamento.
type UpdatePaymentStatusRequest struct {
	IsPaid json.RawMessage `json:"isPaid"`
}

// --------- Handlers ---------

// Create cobre a criação avulsa: exige comprovante e resolve o valor a
// partir do booking referenciado.
func (h *TransactionHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	bookingID, err := uuid.Parse(c.PostForm("bookingId"))
	if err != nil {
		httperr.BadRequest(c, "Booking ID harus berupa UUID yang valid")
		return
	}

	q := h.db.Preload("ServicePrice").Where("id = ?", bookingID)
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

	var count int64
	if err := h.db.Model(&models.Transaction{}).Where("booking_id = ?", booking.ID).Count(&count).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "Transaksi untuk booking ini sudah ada")
		return
	}

	fh, err := c.FormFile("paymentProof")
	if err != nil {
		httperr.BadRequest(c, "Bukti pembayaran wajib diunggah")
		return
	}

	proofURL, err := h.uploadProof(c, fh, user.Username)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			httperr.BadRequest(c, verr.Message)
			return
		}
		httperr.Internal(c, "Gagal mengunggah bukti pembayaran")
		return
	}

	transaction := models.Transaction{
		BookingID:    booking.ID,
		TotalAmount:  float64(booking.ServicePrice.Price),
		PaymentProof: proofURL,
		IsPaid:       false,
	}

	if err := h.db.Create(&transaction).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.Created(c, "Transaksi berhasil dibuat", transaction)
}

func (h *TransactionHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	page, limit := pageParams(c)

	base := h.db.Model(&models.Transaction{})
	if !user.IsAdmin() {
		base = base.
			Joins("JOIN bookings ON bookings.id = transactions.booking_id").
			Where("bookings.user_id = ?", user.ID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	var transactions []models.Transaction
	if err := base.
		Preload("Booking").
		Preload("Booking.ServicePrice").
		Preload("Booking.ServicePrice.Service", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Order("transactions.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.Page(c, "Daftar transaksi berhasil ditemukan", transactions, page, limit, total)
}

func (h *TransactionHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var transaction models.Transaction
	if err := h.db.
		Preload("Booking").
		First(&transaction, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Transaksi tidak ditemukan")
			return
		}
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	if !user.IsAdmin() && transaction.Booking.UserID != user.ID {
		httperr.Forbidden(c, "Anda tidak memiliki akses")
		return
	}

	httpresp.OK(c, "Transaksi berhasil ditemukan", transaction)
}

func (h *TransactionHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var transaction models.Transaction
	if err := h.db.
		Preload("Booking").
		First(&transaction, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Transaksi tidak ditemukan")
			return
		}
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	if !user.IsAdmin() && transaction.Booking.UserID != user.ID {
		httperr.Forbidden(c, "Anda tidak memiliki akses")
		return
	}

	if fh, err := c.FormFile("paymentProof"); err == nil {
		proofURL, err := h.uploadProof(c, fh, user.Username)
		if err != nil {
			var verr *validation.Error
			if errors.As(err, &verr) {
				httperr.BadRequest(c, verr.Message)
				return
			}
			httperr.Internal(c, "Gagal mengunggah bukti pembayaran")
			return
		}

		// remoção best-effort do comprovante substituído
		if transaction.PaymentProof != "" {
			if res := h.store.Delete(c.Request.Context(), transaction.PaymentProof); !res.OK {
				log.Printf("failed to delete old payment proof %s: %s", transaction.PaymentProof, res.Reason)
			}
		}
		transaction.PaymentProof = proofURL
	}

	if err := h.db.Model(&transaction).
		Update("payment_proof", transaction.PaymentProof).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.OK(c, "Transaksi berhasil diperbarui", transaction)
}

func (h *TransactionHandler) UpdatePaymentStatus(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Format data tidak valid")
		return
	}

	isPaid, err := validation.CoerceBool(req.IsPaid)
	if err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	var transaction models.Transaction
	if err := h.db.First(&transaction, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Transaksi tidak ditemukan")
			return
		}
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	transaction.IsPaid = isPaid
	if err := h.db.Model(&transaction).Update("is_paid", isPaid).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "payment_status_updated",
		Entity:   "transaction",
		EntityID: &transaction.ID,
		Metadata: map[string]any{"isPaid": isPaid},
	})

	httpresp.OK(c, "Status pembayaran berhasil diperbarui", transaction)
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var transaction models.Transaction
	if err := h.db.
		Preload("Booking").
		First(&transaction, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Transaksi tidak ditemukan")
			return
		}
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	if !user.IsAdmin() && transaction.Booking.UserID != user.ID {
		httperr.Forbidden(c, "Anda tidak memiliki akses")
		return
	}

	if transaction.PaymentProof != "" {
		if res := h.store.Delete(c.Request.Context(), transaction.PaymentProof); !res.OK {
			log.Printf("failed to delete payment proof %s: %s", transaction.PaymentProof, res.Reason)
		}
	}

	if err := h.db.Delete(&transaction).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "transaction_deleted",
		Entity:   "transaction",
		EntityID: &transaction.ID,
	})

	httpresp.OK(c, "Transaksi berhasil dihapus", nil)
}

func (h *TransactionHandler) uploadProof(c *gin.Context, fh *multipart.FileHeader, username string) (string, error) {
	data, err := storage.ReadImageUpload(fh)
	if err != nil {
		return "", err
	}

	encoded, err := storage.EncodeProof(data)
	if err != nil {
		return "", &validation.Error{Message: "File gambar tidak valid"}
	}

	slug := strings.ToLower(strings.ReplaceAll(username, " ", "_"))
	return h.store.Upload(c.Request.Context(), storage.FolderPaymentProof, "paymentproof_"+slug, encoded)
}

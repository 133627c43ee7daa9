package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/washapp/carwash-api/internal/domain/booking"
	"github.com/washapp/carwash-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Advisory locks
// --------------------------------------------------

// LockUserDay serializa criações concorrentes do mesmo usuário.
// FOR UPDATE só trava linhas existentes e não enxerga inserts de outras
// transações; o advisory lock transacional fecha essa janela e é
// liberado automaticamente no commit/rollback.
func (r *BookingGormRepository) LockUserDay(
	ctx context.Context,
	userID uuid.UUID,
) error {
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "booking_user:"+userID.String()).
		Error
}

// LockPlate serializa criações concorrentes com a mesma placa; uma placa
// inédita não tem linha nenhuma para FOR UPDATE travar.
func (r *BookingGormRepository) LockPlate(
	ctx context.Context,
	plate string,
) error {
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "booking_plate:"+plate).
		Error
}

// --------------------------------------------------
// ServicePrice
// --------------------------------------------------

func (r *BookingGormRepository) GetServicePrice(
	ctx context.Context,
	id uuid.UUID,
) (*models.ServicePrice, error) {

	var price models.ServicePrice
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&price).Error; err != nil {
		return nil, err
	}
	return &price, nil
}

// --------------------------------------------------
// Quota / placa
// --------------------------------------------------

func (r *BookingGormRepository) CountCreatedBetween(
	ctx context.Context,
	userID uuid.UUID,
	start time.Time,
	end time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, start, end).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingGormRepository) PlateUsedBetween(
	ctx context.Context,
	plate string,
	start time.Time,
	end time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("license_plate = ? AND created_at BETWEEN ? AND ?", plate, start, end).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Booking / Transaction
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) HasTransaction(
	ctx context.Context,
	bookingID uuid.UUID,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("booking_id = ?", bookingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingGormRepository) CreateTransaction(
	ctx context.Context,
	t *models.Transaction,
) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// --------------------------------------------------
// Transação de banco
// --------------------------------------------------

func (r *BookingGormRepository) InTransaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

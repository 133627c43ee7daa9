package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/washapp/carwash-api/internal/audit"
	domain "github.com/washapp/carwash-api/internal/domain/booking"
	"github.com/washapp/carwash-api/internal/httperr"
	"github.com/washapp/carwash-api/internal/models"
	"github.com/washapp/carwash-api/internal/validation"
)

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute valida a entrada e cria o booking com a transação de pagamento
// associada. Cota diária, unicidade de placa e as duas inserções rodam
// dentro de uma única transação de banco; advisory locks por usuário e
// por placa serializam criações concorrentes, já que locks de linha não
// bloqueiam inserts de outras transações.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	userID uuid.UUID,
	in validation.BookingInput,
) (*models.Booking, *models.Transaction, error) {

	now := uc.now()

	if err := in.Validate(now); err != nil {
		return nil, nil, err
	}

	servicePriceID, _ := uuid.Parse(in.ServicePriceID)

	var (
		created *models.Booking
		payment *models.Transaction
	)

	err := uc.repo.InTransaction(ctx, func(tx domain.Repository) error {

		if err := tx.LockUserDay(ctx, userID); err != nil {
			return err
		}
		if in.LicensePlate != "" {
			if err := tx.LockPlate(ctx, in.LicensePlate); err != nil {
				return err
			}
		}

		dayStart, dayEnd := domain.DayRange(now)

		count, err := tx.CountCreatedBetween(ctx, userID, dayStart, dayEnd)
		if err != nil {
			return err
		}
		if count >= domain.MaxPerDay {
			return httperr.ErrBusiness("daily_quota_exceeded")
		}

		price, err := tx.GetServicePrice(ctx, servicePriceID)
		if err != nil {
			return httperr.ErrBusiness("service_price_not_found")
		}

		if in.LicensePlate != "" {
			used, err := tx.PlateUsedBetween(ctx, in.LicensePlate, dayStart, dayEnd)
			if err != nil {
				return err
			}
			if used {
				return httperr.ErrBusiness("plate_in_use")
			}
		}

		b := &models.Booking{
			UserID:         userID,
			ServicePriceID: price.ID,
			BookingDate:    in.Date(now.Location()),
			BookingTime:    in.BookingTime,
			LicensePlate:   in.LicensePlate,
			Status:         string(domain.InitialStatus()),
		}

		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}

		exists, err := tx.HasTransaction(ctx, b.ID)
		if err != nil {
			return err
		}
		if !exists {
			t := &models.Transaction{
				BookingID:   b.ID,
				TotalAmount: float64(price.Price),
				IsPaid:      false,
			}
			if err := tx.CreateTransaction(ctx, t); err != nil {
				return err
			}
			payment = t
		}

		created = b
		return nil
	})

	if err != nil {
		return nil, nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &userID,
			Action:   "booking_created",
			Entity:   "booking",
			EntityID: &created.ID,
		})
	}

	return created, payment, nil
}

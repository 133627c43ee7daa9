package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/washapp/carwash-api/internal/models"
)

type Repository interface {
	// -------- ServicePrice --------
	GetServicePrice(
		ctx context.Context,
		id uuid.UUID,
	) (*models.ServicePrice, error)

	// -------- Serialização da seção crítica --------
	// Advisory locks transacionais: locks de linha não bloqueiam inserts
	// de outras transações, então a seção crítica inteira é serializada
	// por usuário e por placa. Liberados no commit/rollback.
	LockUserDay(
		ctx context.Context,
		userID uuid.UUID,
	) error

	LockPlate(
		ctx context.Context,
		plate string,
	) error

	// -------- Quota / plate (dentro da seção crítica) --------
	CountCreatedBetween(
		ctx context.Context,
		userID uuid.UUID,
		start time.Time,
		end time.Time,
	) (int64, error)

	PlateUsedBetween(
		ctx context.Context,
		plate string,
		start time.Time,
		end time.Time,
	) (bool, error)

	// -------- Booking / Transaction --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	HasTransaction(
		ctx context.Context,
		bookingID uuid.UUID,
	) (bool, error)

	CreateTransaction(
		ctx context.Context,
		t *models.Transaction,
	) error

	// InTransaction executa fn numa transação de banco; o Repository
	// recebido por fn opera dentro dela.
	InTransaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}

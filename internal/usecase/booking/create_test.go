package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domain "github.com/washapp/carwash-api/internal/domain/booking"
	"github.com/washapp/carwash-api/internal/httperr"
	"github.com/washapp/carwash-api/internal/models"
	"github.com/washapp/carwash-api/internal/validation"
)

// fakeRepo simula o repositório em memória; InTransaction apenas executa
// fn, já que não há concorrência nos testes. ops registra a ordem das
// chamadas dentro da transação.
type fakeRepo struct {
	prices       map[uuid.UUID]*models.ServicePrice
	bookings     []*models.Booking
	transactions []*models.Transaction
	now          time.Time
	ops          []string
}

func (f *fakeRepo) LockUserDay(_ context.Context, _ uuid.UUID) error {
	f.ops = append(f.ops, "lock-user")
	return nil
}

func (f *fakeRepo) LockPlate(_ context.Context, _ string) error {
	f.ops = append(f.ops, "lock-plate")
	return nil
}

func (f *fakeRepo) GetServicePrice(_ context.Context, id uuid.UUID) (*models.ServicePrice, error) {
	p, ok := f.prices[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (f *fakeRepo) CountCreatedBetween(_ context.Context, userID uuid.UUID, start, end time.Time) (int64, error) {
	f.ops = append(f.ops, "count-user")
	var n int64
	for _, b := range f.bookings {
		if b.UserID == userID && !b.CreatedAt.Before(start) && !b.CreatedAt.After(end) {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) PlateUsedBetween(_ context.Context, plate string, start, end time.Time) (bool, error) {
	f.ops = append(f.ops, "check-plate")
	for _, b := range f.bookings {
		if b.LicensePlate == plate && !b.CreatedAt.Before(start) && !b.CreatedAt.After(end) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	b.ID = uuid.New()
	b.CreatedAt = f.now
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeRepo) HasTransaction(_ context.Context, bookingID uuid.UUID) (bool, error) {
	for _, t := range f.transactions {
		if t.BookingID == bookingID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateTransaction(_ context.Context, t *models.Transaction) error {
	t.ID = uuid.New()
	f.transactions = append(f.transactions, t)
	return nil
}

func (f *fakeRepo) InTransaction(_ context.Context, fn func(domain.Repository) error) error {
	return fn(f)
}

// --------- helpers ---------

func newTestUC(t *testing.T, now time.Time) (*CreateBooking, *fakeRepo, uuid.UUID) {
	t.Helper()

	priceID := uuid.New()
	repo := &fakeRepo{
		prices: map[uuid.UUID]*models.ServicePrice{
			priceID: {ID: priceID, CarType: "SUV", Price: 35000},
		},
		now: now,
	}

	uc := NewCreateBooking(repo, nil)
	uc.now = func() time.Time { return now }

	return uc, repo, priceID
}

func input(priceID uuid.UUID, date, plate string) validation.BookingInput {
	return validation.BookingInput{
		ServicePriceID: priceID.String(),
		BookingDate:    date,
		BookingTime:    "09:30",
		LicensePlate:   plate,
	}
}

// --------- tests ---------

func TestCreateBookingHappyPath(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	uc, repo, priceID := newTestUC(t, now)
	userID := uuid.New()

	booking, payment, err := uc.Execute(context.Background(), userID, input(priceID, "2026-03-11", "B1234XY"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if booking.Status != "pending" {
		t.Fatalf("status = %q, want pending", booking.Status)
	}
	if payment == nil {
		t.Fatal("expected auto-created transaction")
	}
	if payment.IsPaid {
		t.Fatal("new transaction must not be paid")
	}
	if payment.TotalAmount != 35000 {
		t.Fatalf("totalAmount = %v, want price of service", payment.TotalAmount)
	}
	if payment.BookingID != booking.ID {
		t.Fatal("transaction not linked to booking")
	}
	if len(repo.transactions) != 1 {
		t.Fatalf("transactions = %d, want 1", len(repo.transactions))
	}
}

func TestCreateBookingDailyQuota(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	uc, _, priceID := newTestUC(t, now)
	userID := uuid.New()

	plates := []string{"B1111AA", "B2222BB"}
	for _, plate := range plates {
		if _, _, err := uc.Execute(context.Background(), userID, input(priceID, "2026-03-11", plate)); err != nil {
			t.Fatalf("booking with plate %s: %v", plate, err)
		}
	}

	_, _, err := uc.Execute(context.Background(), userID, input(priceID, "2026-03-11", "B3333CC"))
	if !httperr.IsBusiness(err, "daily_quota_exceeded") {
		t.Fatalf("third booking: got %v, want daily_quota_exceeded", err)
	}
}

func TestCreateBookingQuotaIsPerUser(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	uc, _, priceID := newTestUC(t, now)

	userA := uuid.New()
	userB := uuid.New()

	for _, plate := range []string{"B1111AA", "B2222BB"} {
		if _, _, err := uc.Execute(context.Background(), userA, input(priceID, "2026-03-11", plate)); err != nil {
			t.Fatalf("user A: %v", err)
		}
	}

	if _, _, err := uc.Execute(context.Background(), userB, input(priceID, "2026-03-11", "B3333CC")); err != nil {
		t.Fatalf("user B should not hit user A's quota: %v", err)
	}
}

func TestCreateBookingPlateConflictAcrossUsers(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	uc, _, priceID := newTestUC(t, now)

	userA := uuid.New()
	userB := uuid.New()

	if _, _, err := uc.Execute(context.Background(), userA, input(priceID, "2026-03-11", "B1234XY")); err != nil {
		t.Fatalf("user A: %v", err)
	}

	_, _, err := uc.Execute(context.Background(), userB, input(priceID, "2026-03-11", "B1234XY"))
	if !httperr.IsBusiness(err, "plate_in_use") {
		t.Fatalf("got %v, want plate_in_use", err)
	}
}

func TestCreateBookingUnknownServicePrice(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	uc, _, _ := newTestUC(t, now)

	_, _, err := uc.Execute(context.Background(), uuid.New(), input(uuid.New(), "2026-03-11", "B1234XY"))
	if !httperr.IsBusiness(err, "service_price_not_found") {
		t.Fatalf("got %v, want service_price_not_found", err)
	}
}

// Ler antes de travar deixaria duas requisições concorrentes passarem
// ambas pela cota e pela placa; os advisory locks têm que vir primeiro.
func TestCreateBookingLocksBeforeReading(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	uc, repo, priceID := newTestUC(t, now)

	if _, _, err := uc.Execute(context.Background(), uuid.New(), input(priceID, "2026-03-11", "B1234XY")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"lock-user", "lock-plate", "count-user", "check-plate"}
	if len(repo.ops) < len(want) {
		t.Fatalf("ops = %v, want prefix %v", repo.ops, want)
	}
	for i, op := range want {
		if repo.ops[i] != op {
			t.Fatalf("ops = %v, want prefix %v", repo.ops, want)
		}
	}
}

func TestCreateBookingValidationError(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	uc, repo, priceID := newTestUC(t, now)

	_, _, err := uc.Execute(context.Background(), uuid.New(), input(priceID, "2026-03-09", "B1234XY"))
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want validation error", err)
	}
	if len(repo.bookings) != 0 {
		t.Fatal("no booking should be created on validation failure")
	}
}

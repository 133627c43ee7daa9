package validation

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRegisterInputFirstViolationWins(t *testing.T) {
	in := RegisterInput{Username: "ab", Email: "not-an-email", Password: "x"}
	err := in.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "Username harus memiliki panjang 3-50 karakter" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestRegisterInputNormalizesEmail(t *testing.T) {
	in := RegisterInput{Username: "budi", Email: "  Budi@Example.COM ", Password: "rahasia123"}
	if err := in.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Email != "budi@example.com" {
		t.Fatalf("email not normalized: %q", in.Email)
	}
}

func TestRegisterInputShortPassword(t *testing.T) {
	in := RegisterInput{Username: "budi", Email: "budi@example.com", Password: "1234567"}
	err := in.Validate()
	if err == nil || err.Error() != "Kata sandi harus terdiri dari minimal 8 karakter" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBookingInputValid(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	in := BookingInput{
		ServicePriceID: "6f1e1c9e-9b5a-4c57-8a10-6a50a1b0c9d2",
		BookingDate:    "2026-03-11",
		BookingTime:    "09:30",
		LicensePlate:   "b1234xy",
	}
	if err := in.Validate(now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.LicensePlate != "B1234XY" {
		t.Fatalf("plate not upper-cased: %q", in.LicensePlate)
	}
	if in.Status != "pending" {
		t.Fatalf("default status = %q, want pending", in.Status)
	}
}

func TestBookingInputDateToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 50, 0, 0, time.Local)
	in := BookingInput{
		ServicePriceID: "6f1e1c9e-9b5a-4c57-8a10-6a50a1b0c9d2",
		BookingDate:    "2026-03-10",
		BookingTime:    "09:30",
		LicensePlate:   "B1234XY",
	}
	// hoje ainda é válido, mesmo no fim do dia
	if err := in.Validate(now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBookingInputPastDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 10, 0, 0, time.Local)
	in := BookingInput{
		ServicePriceID: "6f1e1c9e-9b5a-4c57-8a10-6a50a1b0c9d2",
		BookingDate:    "2026-03-09",
		BookingTime:    "09:30",
		LicensePlate:   "B1234XY",
	}
	err := in.Validate(now)
	if err == nil || err.Error() != "Booking date cannot be in the past" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBookingInputBadTime(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	for _, bad := range []string{"24:00", "9:30", "12:60", "noon"} {
		in := BookingInput{
			ServicePriceID: "6f1e1c9e-9b5a-4c57-8a10-6a50a1b0c9d2",
			BookingDate:    "2026-03-11",
			BookingTime:    bad,
			LicensePlate:   "B1234XY",
		}
		err := in.Validate(now)
		if err == nil || err.Error() != "Invalid time format (HH:mm required)" {
			t.Fatalf("time %q: unexpected error %v", bad, err)
		}
	}
}

func TestBookingInputPlateLength(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	in := BookingInput{
		ServicePriceID: "6f1e1c9e-9b5a-4c57-8a10-6a50a1b0c9d2",
		BookingDate:    "2026-03-11",
		BookingTime:    "09:30",
		LicensePlate:   "B123",
	}
	err := in.Validate(now)
	if err == nil || err.Error() != "License plate must be at least 5 characters" {
		t.Fatalf("unexpected error: %v", err)
	}

	in.LicensePlate = "B1234567890"
	err = in.Validate(now)
	if err == nil || err.Error() != "License plate cannot exceed 10 characters" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBookingInputInvalidStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	in := BookingInput{
		ServicePriceID: "6f1e1c9e-9b5a-4c57-8a10-6a50a1b0c9d2",
		BookingDate:    "2026-03-11",
		BookingTime:    "09:30",
		LicensePlate:   "B1234XY",
		Status:         "cancelled",
	}
	err := in.Validate(now)
	if err == nil || err.Error() != "Invalid status value" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProfileInputPhonePattern(t *testing.T) {
	base := ProfileInput{Name: "Budi Santoso", Address: "Jl. Merdeka 10"}

	for _, ok := range []string{"081234567890", "+6281234567890", "6281234567890"} {
		in := base
		in.PhoneNumber = ok
		if err := in.Validate(); err != nil {
			t.Fatalf("phone %q: unexpected error %v", ok, err)
		}
	}

	in := base
	in.PhoneNumber = "12345"
	if err := in.Validate(); err == nil {
		t.Fatal("expected error for invalid phone")
	}
}

func TestServiceInputPriceFloor(t *testing.T) {
	in := ServiceInput{Name: "Cuci Premium", Description: "Cuci lengkap dengan wax", Price: 19999}
	err := in.Validate()
	if err == nil || err.Error() != "Harga minimal adalah 20.000." {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestServicePriceInputFloor(t *testing.T) {
	in := ServicePriceInput{
		ServiceID: "6f1e1c9e-9b5a-4c57-8a10-6a50a1b0c9d2",
		CarType:   "SUV",
		Price:     9999,
	}
	err := in.Validate()
	if err == nil || err.Error() != "Harga minimal adalah 10000." {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTestimonialInputRatingBounds(t *testing.T) {
	in := TestimonialInput{Rating: 6, Comment: "Mantap sekali"}
	err := in.Validate()
	if err == nil || err.Error() != "Rating maksimal adalah 5" {
		t.Fatalf("unexpected error: %v", err)
	}

	in = TestimonialInput{Rating: 0, Comment: "Mantap sekali"}
	err = in.Validate()
	if err == nil || err.Error() != "Rating wajib diisi" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCoerceBool(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"false"`, false},
	}
	for _, tc := range cases {
		got, err := CoerceBool(json.RawMessage(tc.raw))
		if err != nil {
			t.Fatalf("raw %s: unexpected error %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("raw %s: got %v want %v", tc.raw, got, tc.want)
		}
	}

	for _, bad := range []string{`"yes"`, `1`, `null`, ``} {
		if _, err := CoerceBool(json.RawMessage(bad)); err == nil {
			t.Fatalf("raw %s: expected error", bad)
		}
	}
}

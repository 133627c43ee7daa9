package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

var bookingStatuses = map[string]bool{
	"pending":   true,
	"confirmed": true,
	"completed": true,
	"canceled":  true,
}

type BookingInput struct {
	ServicePriceID string `json:"servicePriceId"`
	BookingDate    string `json:"bookingDate"`
	BookingTime    string `json:"bookingTime"`
	LicensePlate   string `json:"licensePlate"`
	Status         string `json:"status"`
}

func (in *BookingInput) Validate(now time.Time) error {
	in.LicensePlate = strings.ToUpper(strings.TrimSpace(in.LicensePlate))

	if in.ServicePriceID == "" {
		return fail("Service Price ID is required")
	}
	if _, err := uuid.Parse(in.ServicePriceID); err != nil {
		return fail("Invalid Service Price ID format")
	}
	if in.BookingDate == "" {
		return fail("Booking date is required")
	}
	date, err := time.ParseInLocation("2006-01-02", in.BookingDate, now.Location())
	if err != nil {
		return fail("Invalid booking date format (YYYY-MM-DD required)")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return fail("Booking date cannot be in the past")
	}
	if in.BookingTime == "" {
		return fail("Booking time is required")
	}
	if !timePattern.MatchString(in.BookingTime) {
		return fail("Invalid time format (HH:mm required)")
	}
	if in.LicensePlate == "" {
		return fail("License plate is required")
	}
	if len(in.LicensePlate) < 5 {
		return fail("License plate must be at least 5 characters")
	}
	if len(in.LicensePlate) > 10 {
		return fail("License plate cannot exceed 10 characters")
	}
	if in.Status == "" {
		in.Status = "pending"
	}
	if !bookingStatuses[in.Status] {
		return fail("Invalid status value")
	}
	return nil
}

// Date devolve a data já validada; chamar somente após Validate.
func (in *BookingInput) Date(loc *time.Location) time.Time {
	date, _ := time.ParseInLocation("2006-01-02", in.BookingDate, loc)
	return date
}

package booking

import (
	"testing"
	"time"
)

func TestDayRange(t *testing.T) {
	at := time.Date(2026, 3, 10, 14, 35, 12, 500, time.Local)
	start, end := DayRange(at)

	if !start.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("start = %v", start)
	}
	if !end.Before(time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("end %v crosses midnight", end)
	}
	if end.Day() != 10 {
		t.Fatalf("end %v not on the same day", end)
	}

	// instantes do mesmo dia caem no intervalo
	for _, h := range []int{0, 12, 23} {
		at := time.Date(2026, 3, 10, h, 59, 59, 0, time.Local)
		if at.Before(start) || at.After(end) {
			t.Fatalf("%v outside [%v, %v]", at, start, end)
		}
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled} {
		if !s.IsValid() {
			t.Fatalf("%s should be valid", s)
		}
	}
	for _, s := range []Status{"cancelled", "scheduled", ""} {
		if s.IsValid() {
			t.Fatalf("%s should be invalid", s)
		}
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusPending {
		t.Fatalf("initial status = %s", InitialStatus())
	}
}

package middleware

import "testing"

func TestExceeded(t *testing.T) {
	cases := []struct {
		count     int64
		perMinute int
		want      bool
	}{
		{1, 100, false},
		{100, 100, false},
		{101, 100, true},
		{1, 1, false},
		{2, 1, true},
	}

	for _, tc := range cases {
		if got := Exceeded(tc.count, tc.perMinute); got != tc.want {
			t.Fatalf("Exceeded(%d, %d) = %v, want %v", tc.count, tc.perMinute, got, tc.want)
		}
	}
}

func TestRateLimitKey(t *testing.T) {
	if got := rateLimitKey("10.0.0.1"); got != "ratelimit:10.0.0.1" {
		t.Fatalf("got %q", got)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/washapp/carwash-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, userID uuid.UUID, secret string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func contextWithRequest(req *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestExtractTokenFromHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer abc123")

	if got := ExtractToken(contextWithRequest(req)); got != "abc123" {
		t.Fatalf("got %q, want abc123", got)
	}
}

func TestExtractTokenHeaderWinsOverCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer from-header")
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "from-cookie"})

	if got := ExtractToken(contextWithRequest(req)); got != "from-header" {
		t.Fatalf("got %q, want from-header", got)
	}
}

func TestExtractTokenMalformedHeaderIgnoresCookie(t *testing.T) {
	// Header presente porém inválido não cai no cookie.
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc123")
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "from-cookie"})

	if got := ExtractToken(contextWithRequest(req)); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestExtractTokenFromCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "from-cookie"})

	if got := ExtractToken(contextWithRequest(req)); got != "from-cookie" {
		t.Fatalf("got %q, want from-cookie", got)
	}
}

func TestParseUserIDRoundTrip(t *testing.T) {
	userID := uuid.New()
	tok := signToken(t, userID, "test-secret", time.Now().Add(time.Hour))

	got, err := ParseUserID(tok, "test-secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != userID {
		t.Fatalf("got %s, want %s", got, userID)
	}
}

func TestParseUserIDWrongSecret(t *testing.T) {
	tok := signToken(t, uuid.New(), "test-secret", time.Now().Add(time.Hour))

	if _, err := ParseUserID(tok, "other-secret"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseUserIDExpired(t *testing.T) {
	tok := signToken(t, uuid.New(), "test-secret", time.Now().Add(-time.Minute))

	if _, err := ParseUserID(tok, "test-secret"); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseUserIDNonUUIDSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := ParseUserID(signed, "test-secret"); err == nil {
		t.Fatal("expected error for non-uuid subject")
	}
}

func TestRequireRoles(t *testing.T) {
	cases := []struct {
		name       string
		role       models.RoleName
		allowed    []models.RoleName
		wantStatus int
	}{
		{"admin allowed", models.RoleAdmin, []models.RoleName{models.RoleAdmin}, http.StatusOK},
		{"user rejected on admin route", models.RoleUser, []models.RoleName{models.RoleAdmin}, http.StatusForbidden},
		{"user allowed on shared route", models.RoleUser, []models.RoleName{models.RoleAdmin, models.RoleUser}, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/resource",
				func(c *gin.Context) { c.Set(ContextUserRole, tc.role) },
				RequireRoles(tc.allowed...),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resource", nil))

			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantStatus)
			}
		})
	}
}

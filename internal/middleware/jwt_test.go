package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"apptbook/internal/utils"
)

const testSecret = "unit-test-secret"

// echoContext builds an echo context for a request with the given
// Authorization header value (empty means no header).
func echoContext(t *testing.T, auth string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/book/1", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func okHandler(c echo.Context) error { return c.String(http.StatusOK, "ok") }

func TestJWTAuthMissingHeader(t *testing.T) {
	c, rec := echoContext(t, "")
	if err := JWTAuth(testSecret)(okHandler)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthGarbageToken(t *testing.T) {
	c, rec := echoContext(t, "Bearer not.a.jwt")
	if err := JWTAuth(testSecret)(okHandler)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	at, err := utils.NewAccessToken("another-secret", 7, "mallory", "user", 5)
	if err != nil {
		t.Fatalf("NewAccessToken failed: %v", err)
	}
	c, rec := echoContext(t, "Bearer "+at.Token)
	if err := JWTAuth(testSecret)(okHandler)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthValidTokenInjectsClaims(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, 7, "alice", "admin", 5)
	if err != nil {
		t.Fatalf("NewAccessToken failed: %v", err)
	}
	c, rec := echoContext(t, "Bearer "+at.Token)

	called := false
	next := func(c echo.Context) error {
		called = true
		if u, ok := Username(c); !ok || u != "alice" {
			t.Fatalf("username in context = %q (%v), want alice", u, ok)
		}
		if role, _ := c.Get("role").(string); role != "admin" {
			t.Fatalf("role in context = %v, want admin", c.Get("role"))
		}
		return c.NoContent(http.StatusOK)
	}
	if err := JWTAuth(testSecret)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !called {
		t.Fatal("next handler was not invoked for a valid token")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestUsernameWithoutAuth(t *testing.T) {
	c, _ := echoContext(t, "")
	if u, ok := Username(c); ok || u != "" {
		t.Fatalf("Username on bare context = %q (%v), want empty/false", u, ok)
	}
}

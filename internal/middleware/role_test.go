package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func roleContext(role string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}
	return c, rec
}

func TestRequireRoleAllows(t *testing.T) {
	c, rec := roleContext("admin")
	if err := RequireRole("admin")(okHandler)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRequireRoleRejectsWrongRole(t *testing.T) {
	c, rec := roleContext("user")
	if err := RequireRole("admin")(okHandler)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	c, rec := roleContext("")
	if err := RequireRole("admin", "user")(okHandler)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

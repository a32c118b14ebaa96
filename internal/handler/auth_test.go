package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

// jsonContext builds an echo context for a JSON POST. Tests here only
// exercise the validation paths that return before any repository call,
// so a zero-value handler is enough.
func jsonContext(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, rec.Body.String())
	}
	return m
}

func TestRegisterMissingFields(t *testing.T) {
	h := &AuthHandler{}
	for _, body := range []string{
		`{}`,
		`{"username":"alice"}`,
		`{"password":"pw"}`,
		`{"username":"  ","password":"pw"}`,
	} {
		c, rec := jsonContext(t, "/register", body)
		if err := h.Register(c); err != nil {
			t.Fatalf("Register(%s) returned error: %v", body, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("Register(%s) status = %d, want 200", body, rec.Code)
		}
		m := decodeBody(t, rec)
		if m["success"] != false || m["message"] != "Missing fields" {
			t.Fatalf("Register(%s) body = %v, want success:false Missing fields", body, m)
		}
	}
}

func TestLoginMissingFieldsIsGenericFailure(t *testing.T) {
	h := &AuthHandler{}
	c, rec := jsonContext(t, "/login", `{"username":"alice"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	m := decodeBody(t, rec)
	if m["success"] != false {
		t.Fatalf("body = %v, want success:false", m)
	}
	// The failure body must not leak whether the username exists.
	if _, leaked := m["message"]; leaked {
		t.Fatalf("login failure should carry no message, got %v", m)
	}
}

func TestRefreshRequiresToken(t *testing.T) {
	h := &AuthHandler{}
	c, rec := jsonContext(t, "/refresh", `{"refresh_token":"  "}`)
	if err := h.Refresh(c); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLogoutRequiresToken(t *testing.T) {
	h := &AuthHandler{}
	c, rec := jsonContext(t, "/logout", `{}`)
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

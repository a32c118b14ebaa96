package handler

import (
	"net/http"
	"testing"
)

func TestAddSlotMissingFields(t *testing.T) {
	h := &SlotHandler{}
	for _, body := range []string{
		`{}`,
		`{"date":"2024-01-01"}`,
		`{"time":"09:00"}`,
		`{"date":" ","time":"09:00"}`,
	} {
		c, rec := jsonContext(t, "/add-slot", body)
		if err := h.AddSlot(c); err != nil {
			t.Fatalf("AddSlot(%s) returned error: %v", body, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("AddSlot(%s) status = %d, want 200", body, rec.Code)
		}
		m := decodeBody(t, rec)
		if m["message"] != "Date and time required" {
			t.Fatalf("AddSlot(%s) body = %v, want Date and time required", body, m)
		}
	}
}

func TestAddSlotIgnoresBodyRole(t *testing.T) {
	// The legacy client sends a role field; it must not be what grants
	// access (middleware does), and it must not break binding.
	h := &SlotHandler{}
	c, rec := jsonContext(t, "/add-slot", `{"role":"admin"}`)
	if err := h.AddSlot(c); err != nil {
		t.Fatalf("AddSlot returned error: %v", err)
	}
	m := decodeBody(t, rec)
	if m["message"] != "Date and time required" {
		t.Fatalf("body = %v, want Date and time required", m)
	}
}

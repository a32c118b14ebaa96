package queue

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing working directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}

func TestHandleMessageAppendsLogLine(t *testing.T) {
	chdir(t, t.TempDir())

	body := []byte(`{"action":"confirmed","slot_id":7,"date":"2024-01-01","time":"09:00","username":"alice","at":"2024-01-01T08:00:00Z"}`)
	if err := handleMessage(body); err != nil {
		t.Fatalf("handleMessage failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join("logs", "booking.log"))
	if err != nil {
		t.Fatalf("reading booking.log: %v", err)
	}
	line := string(data)
	for _, want := range []string{"Booking confirmed", "slot_id=7", "date=2024-01-01", "time=09:00", "user=alice"} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line %q missing %q", line, want)
		}
	}
}

func TestHandleMessageRejectsGarbage(t *testing.T) {
	chdir(t, t.TempDir())
	if err := handleMessage([]byte("not json")); err == nil {
		t.Fatal("malformed payload should be rejected")
	}
}

package utils

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("pass123", 4) // min cost keeps the test fast
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "" || hash == "pass123" {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}
	if !VerifyPassword(hash, "pass123") {
		t.Fatal("VerifyPassword should succeed for correct password")
	}
	if VerifyPassword(hash, "wrong-pass") {
		t.Fatal("VerifyPassword should fail for wrong password")
	}
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	h1, err := HashPassword("same", 4)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	h2, err := HashPassword("same", 4)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password should differ (salted)")
	}
}

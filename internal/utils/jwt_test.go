package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessTokenClaims(t *testing.T) {
	at, err := NewAccessToken("test-secret", 42, "alice", "user", 15)
	if err != nil {
		t.Fatalf("NewAccessToken failed: %v", err)
	}
	if at.Token == "" {
		t.Fatal("expected non-empty token")
	}
	if remaining := time.Until(at.Exp); remaining < 14*time.Minute || remaining > 16*time.Minute {
		t.Fatalf("unexpected expiry distance: %s", remaining)
	}

	tok, err := jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("token should parse and validate: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["username"] != "alice" {
		t.Fatalf("username claim = %v, want alice", claims["username"])
	}
	if claims["role"] != "user" {
		t.Fatalf("role claim = %v, want user", claims["role"])
	}
	if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
		t.Fatalf("sub claim = %v, want 42", claims["sub"])
	}
}

func TestNewAccessTokenWrongSecret(t *testing.T) {
	at, err := NewAccessToken("right-secret", 1, "bob", "admin", 5)
	if err != nil {
		t.Fatalf("NewAccessToken failed: %v", err)
	}
	if _, err := jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	}); err == nil {
		t.Fatal("token signed with another secret should not verify")
	}
}

func TestRefreshTokenHashing(t *testing.T) {
	rt, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("NewRefreshToken failed: %v", err)
	}
	if len(rt.Raw) != 96 { // 48 random bytes hex-encoded
		t.Fatalf("raw token length = %d, want 96", len(rt.Raw))
	}
	h1 := HashRefreshRaw(rt.Raw)
	h2 := HashRefreshRaw(rt.Raw)
	if h1 != h2 {
		t.Fatal("hashing the same raw token must be deterministic")
	}
	if len(h1) != 64 { // sha256 hex digest
		t.Fatalf("hash length = %d, want 64", len(h1))
	}
	if h1 == rt.Raw[:64] {
		t.Fatal("hash should not expose the raw token")
	}

	other, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("NewRefreshToken failed: %v", err)
	}
	if other.Raw == rt.Raw {
		t.Fatal("two refresh tokens should never collide")
	}
}

package utils // helpers for issuing and hashing the tokens used by the auth flow

import (
	"crypto/rand"   // secure randomness for refresh tokens
	"crypto/sha256" // refresh tokens are stored hashed
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken is a signed HS256 JWT together with its expiry. Clients send
// it back in the Authorization header on every privileged request; handlers
// never trust an identity supplied in the request body.
type AccessToken struct {
	Token string    // serialized JWT
	Exp   time.Time // UTC expiration time
}

// RefreshToken is the long-lived opaque token used to obtain new access
// tokens. Raw goes back to the client; only its SHA-256 hash is persisted.
type RefreshToken struct {
	Raw string
	Exp time.Time
}

// NewAccessToken signs an access token for a user. Besides the standard
// sub/exp/iat claims it carries the username and role: bookings are keyed
// by username in the ledger, so handlers read identity straight from the
// verified claims rather than looking the user up again.
func NewAccessToken(secret string, userID uint64, username, role string, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"role":     role,
		"exp":      exp.Unix(),
		"iat":      time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// NewRefreshToken returns a cryptographically random refresh token valid
// for ttlDays days.
func NewRefreshToken(ttlDays int) (RefreshToken, error) {
	raw, err := randomHex(48) // 48 bytes -> 96 hex chars
	if err != nil {
		return RefreshToken{}, err
	}
	return RefreshToken{
		Raw: raw,
		Exp: time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour),
	}, nil
}

// HashRefreshRaw returns the SHA-256 hex digest of a raw refresh token.
// Only the digest is stored, so a leaked table cannot mint sessions.
func HashRefreshRaw(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

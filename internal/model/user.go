package model

import "time"

// User represents a row in the `users` table. Passwords are stored as
// bcrypt hashes; the plain value never touches the database. Role is a
// plain string rather than a lookup table because exactly two roles
// exist ("user" and "admin") and nothing else is planned.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name, also the key bookings are filed under.
//  PasswordHash – bcrypt hashed password.
//  Role         – "user" or "admin".
//  CreatedAt    – timestamp of registration (or seeding, for the admin).
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	CreatedAt    time.Time // users.created_at
}

// Role values stored in users.role and carried in the JWT "role" claim.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// RefreshToken models a row in the `refresh_tokens` table. The raw token
// handed to the client is never stored; only its SHA-256 hash.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp.
//  RevokedAt – when the token was revoked (null while active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}

package repository

import (
	"context"
	"database/sql"
	"strings"

	"apptbook/internal/model"
	"apptbook/internal/utils"
)

// UserRepo persists application users.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password and inserts a user with the given role,
// returning the new ID. Usernames are trimmed and lower-cased before
// storage so the unique key is case-insensitive in practice.
func (r *UserRepo) Create(ctx context.Context, username, password, role string, cost int) (uint64, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, role) VALUES (?,?,?)",
		username, hash, role)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches a user by normalized username. sql.ErrNoRows is
// passed through for the caller to fold into its generic login failure.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password_hash,role,created_at FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password_hash,role,created_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, err
}

// EnsureAdmin seeds the admin account if it does not exist yet. It is
// idempotent: an existing row with the same username is left untouched,
// including its password, so rotating ADMIN_PASSWORD only affects fresh
// databases.
func (r *UserRepo) EnsureAdmin(ctx context.Context, username, password string, cost int) error {
	_, err := r.Create(ctx, username, password, model.RoleAdmin, cost)
	if err == ErrUsernameExists {
		return nil
	}
	return err
}

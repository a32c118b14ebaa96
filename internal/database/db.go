package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// schema holds the create-if-absent statements run at every startup. There
// is no migration tooling; the schema is small and only ever grows by
// additive statements appended here.
//
// Two uniqueness constraints carry the booking invariants:
//   - uq_slot on (date, time): no duplicate slots.
//   - uq_booking_slot on slot_id: at most one booking per slot. This key,
//     not application logic, decides concurrent booking races.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		username      VARCHAR(64)  NOT NULL,
		password_hash VARCHAR(100) NOT NULL,
		role          VARCHAR(16)  NOT NULL DEFAULT 'user',
		created_at    TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_username (username)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS slots (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		date         VARCHAR(10) NOT NULL,
		time         VARCHAR(5)  NOT NULL,
		is_available TINYINT(1)  NOT NULL DEFAULT 1,
		created_at   TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_slot (date, time)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		slot_id    BIGINT UNSIGNED NOT NULL,
		username   VARCHAR(64) NOT NULL,
		created_at TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_booking_slot (slot_id),
		CONSTRAINT fk_booking_slot FOREIGN KEY (slot_id) REFERENCES slots (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id    BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64)  NOT NULL,
		expires_at DATETIME  NOT NULL,
		revoked_at DATETIME  NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_token_hash (token_hash),
		CONSTRAINT fk_token_user FOREIGN KEY (user_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the tables if they do not exist yet. It is safe to
// call on every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

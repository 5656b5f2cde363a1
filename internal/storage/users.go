// Package storage implements sqlx repositories for the bot's Postgres schema.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/collegebot/internal/domain"
)

// Users persists Telegram users and their captured contact fields.
type Users struct {
	db *sqlx.DB
}

// NewUsers returns a Users repository over the given connection.
func NewUsers(db *sqlx.DB) *Users {
	return &Users{db: db}
}

// Get returns the user by Telegram id.
func (r *Users) Get(ctx context.Context, telegramID int64) (domain.User, error) {
	var u domain.User
	err := r.db.GetContext(ctx, &u,
		`SELECT telegram_id, name, email, created_at, updated_at
		 FROM users WHERE telegram_id = $1`, telegramID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Ensure creates the user row if missing and returns the current record.
func (r *Users) Ensure(ctx context.Context, telegramID int64) (domain.User, error) {
	var u domain.User
	err := r.db.GetContext(ctx, &u,
		`INSERT INTO users (telegram_id)
		 VALUES ($1)
		 ON CONFLICT (telegram_id) DO UPDATE SET updated_at = now()
		 RETURNING telegram_id, name, email, created_at, updated_at`, telegramID)
	if err != nil {
		return domain.User{}, fmt.Errorf("ensure user: %w", err)
	}
	return u, nil
}

// SetName stores the captured name.
func (r *Users) SetName(ctx context.Context, telegramID int64, name string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = $2, updated_at = now() WHERE telegram_id = $1`,
		telegramID, name)
	if err != nil {
		return fmt.Errorf("set user name: %w", err)
	}
	return requireRow(res, domain.ErrUserNotFound)
}

// SetEmail stores the captured email.
func (r *Users) SetEmail(ctx context.Context, telegramID int64, email string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET email = $2, updated_at = now() WHERE telegram_id = $1`,
		telegramID, email)
	if err != nil {
		return fmt.Errorf("set user email: %w", err)
	}
	return requireRow(res, domain.ErrUserNotFound)
}

func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

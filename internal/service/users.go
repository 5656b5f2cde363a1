// Package service wires domain logic over the storage repositories and the
// external answering backend.
package service

import (
	"context"

	"log/slog"

	"github.com/m3rciful/collegebot/core/logger"
	"github.com/m3rciful/collegebot/internal/domain"
	"github.com/m3rciful/collegebot/internal/storage"
)

// Users manages user records and captured contact fields.
type Users struct {
	repo *storage.Users
}

// NewUsers returns a Users service.
func NewUsers(repo *storage.Users) *Users {
	return &Users{repo: repo}
}

// Ensure creates the user on first contact and returns the current record.
func (s *Users) Ensure(ctx context.Context, telegramID int64) (domain.User, error) {
	u, err := s.repo.Ensure(ctx, telegramID)
	if err != nil {
		logger.SVCUsers.Error("ensure failed",
			slog.String("event", "user.ensure"),
			slog.Int64("user_id", telegramID),
			slog.String("err", err.Error()),
		)
		return domain.User{}, err
	}
	return u, nil
}

// Get returns the stored user.
func (s *Users) Get(ctx context.Context, telegramID int64) (domain.User, error) {
	return s.repo.Get(ctx, telegramID)
}

// SetName stores the captured name.
func (s *Users) SetName(ctx context.Context, telegramID int64, name string) error {
	if err := s.repo.SetName(ctx, telegramID, name); err != nil {
		logger.SVCUsers.Error("set name failed",
			slog.String("event", "user.set_name"),
			slog.Int64("user_id", telegramID),
			slog.String("err", err.Error()),
		)
		return err
	}
	logger.SVCUsers.Info("name captured",
		slog.String("event", "user.set_name"),
		slog.Int64("user_id", telegramID),
	)
	return nil
}

// SetEmail stores the captured email.
func (s *Users) SetEmail(ctx context.Context, telegramID int64, email string) error {
	if err := s.repo.SetEmail(ctx, telegramID, email); err != nil {
		logger.SVCUsers.Error("set email failed",
			slog.String("event", "user.set_email"),
			slog.Int64("user_id", telegramID),
			slog.String("err", err.Error()),
		)
		return err
	}
	logger.SVCUsers.Info("email captured",
		slog.String("event", "user.set_email"),
		slog.Int64("user_id", telegramID),
	)
	return nil
}

package service

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/m3rciful/collegebot/core/logger"
	"github.com/m3rciful/collegebot/internal/domain"
	"github.com/m3rciful/collegebot/internal/storage"
)

// Submissions serves one submission kind (complaints or stories) over its
// repository. File enforces the single-active rule for complaints only.
type Submissions struct {
	repo *storage.Submissions
	kind domain.SubmissionKind
	log  *slog.Logger
}

// NewComplaints returns the complaints service.
func NewComplaints(repo *storage.Submissions) *Submissions {
	return &Submissions{repo: repo, kind: domain.KindComplaint, log: logger.SVCComplaints}
}

// NewStories returns the profession stories service.
func NewStories(repo *storage.Submissions) *Submissions {
	return &Submissions{repo: repo, kind: domain.KindStory, log: logger.SVCStories}
}

// HasActive reports whether the user has a submission in new or reviewed status.
func (s *Submissions) HasActive(ctx context.Context, telegramID int64) (bool, error) {
	active, err := s.repo.ActiveByUser(ctx, telegramID)
	if err != nil {
		return false, err
	}
	return len(active) > 0, nil
}

// File stores a new submission. Complaints are refused while the user still
// has an active one.
func (s *Submissions) File(ctx context.Context, telegramID int64, text string) (domain.Submission, error) {
	if s.kind == domain.KindComplaint {
		has, err := s.HasActive(ctx, telegramID)
		if err != nil {
			return domain.Submission{}, fmt.Errorf("check active: %w", err)
		}
		if has {
			return domain.Submission{}, domain.ErrActiveSubmissionExists
		}
	}

	sub, err := s.repo.Create(ctx, telegramID, text)
	if err != nil {
		s.log.Error("file failed",
			slog.String("event", "submission.file"),
			slog.Int64("user_id", telegramID),
			slog.String("err", err.Error()),
		)
		return domain.Submission{}, err
	}
	s.log.Info("submission filed",
		slog.String("event", "submission.file"),
		slog.Int64("user_id", telegramID),
		slog.Int64("submission_id", sub.ID),
	)
	return sub, nil
}

// ByID returns the submission by id.
func (s *Submissions) ByID(ctx context.Context, id int64) (domain.Submission, error) {
	return s.repo.ByID(ctx, id)
}

// ActiveByUser lists the user's active submissions.
func (s *Submissions) ActiveByUser(ctx context.Context, telegramID int64) ([]domain.Submission, error) {
	return s.repo.ActiveByUser(ctx, telegramID)
}

// UsersWithActive lists users who still have active submissions.
func (s *Submissions) UsersWithActive(ctx context.Context) ([]int64, error) {
	return s.repo.UsersWithActive(ctx)
}

// Review marks a new submission reviewed on first admin open. Submissions
// already reviewed or closed pass through unchanged.
func (s *Submissions) Review(ctx context.Context, id int64) (domain.Submission, bool, error) {
	before, err := s.repo.ByID(ctx, id)
	if err != nil {
		return domain.Submission{}, false, err
	}
	if before.Status != domain.StatusNew {
		return before, false, nil
	}
	after, err := s.repo.MarkReviewed(ctx, id)
	if err != nil {
		return domain.Submission{}, false, err
	}
	changed := after.Status == domain.StatusReviewed && before.Status == domain.StatusNew
	if changed {
		s.log.Info("submission reviewed",
			slog.String("event", "submission.review"),
			slog.Int64("submission_id", id),
		)
	}
	return after, changed, nil
}

// Close moves an active submission to closed. Closed or missing submissions
// yield ErrSubmissionNotFound without mutation.
func (s *Submissions) Close(ctx context.Context, id int64) (domain.Submission, error) {
	sub, err := s.repo.Close(ctx, id)
	if err != nil {
		return domain.Submission{}, err
	}
	s.log.Info("submission closed",
		slog.String("event", "submission.close"),
		slog.Int64("submission_id", id),
	)
	return sub, nil
}

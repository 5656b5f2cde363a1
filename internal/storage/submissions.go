package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/collegebot/internal/domain"
)

const submissionColumns = "id, telegram_id, text, status, created_at, reviewed_at, closed_at"

// Submissions persists complaints or profession stories. Both share the same
// column set, so one repository serves either table.
type Submissions struct {
	db    *sqlx.DB
	table string
}

// NewComplaints returns a repository over the complaints table.
func NewComplaints(db *sqlx.DB) *Submissions {
	return &Submissions{db: db, table: "complaints"}
}

// NewStories returns a repository over the profession_stories table.
func NewStories(db *sqlx.DB) *Submissions {
	return &Submissions{db: db, table: "profession_stories"}
}

// Create files a new submission with status new.
func (r *Submissions) Create(ctx context.Context, telegramID int64, text string) (domain.Submission, error) {
	var s domain.Submission
	q := fmt.Sprintf(
		`INSERT INTO %s (telegram_id, text, status)
		 VALUES ($1, $2, $3)
		 RETURNING %s`, r.table, submissionColumns)
	if err := r.db.GetContext(ctx, &s, q, telegramID, text, domain.StatusNew); err != nil {
		return domain.Submission{}, fmt.Errorf("create %s: %w", r.table, err)
	}
	return s, nil
}

// ByID returns a submission by id.
func (r *Submissions) ByID(ctx context.Context, id int64) (domain.Submission, error) {
	var s domain.Submission
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, submissionColumns, r.table)
	err := r.db.GetContext(ctx, &s, q, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Submission{}, domain.ErrSubmissionNotFound
	}
	if err != nil {
		return domain.Submission{}, fmt.Errorf("get %s: %w", r.table, err)
	}
	return s, nil
}

// ActiveByUser lists the user's submissions still in new or reviewed status.
func (r *Submissions) ActiveByUser(ctx context.Context, telegramID int64) ([]domain.Submission, error) {
	var out []domain.Submission
	q := fmt.Sprintf(
		`SELECT %s FROM %s
		 WHERE telegram_id = $1 AND status IN ($2, $3)
		 ORDER BY id`, submissionColumns, r.table)
	if err := r.db.SelectContext(ctx, &out, q, telegramID, domain.StatusNew, domain.StatusReviewed); err != nil {
		return nil, fmt.Errorf("list active %s: %w", r.table, err)
	}
	return out, nil
}

// UsersWithActive returns the distinct Telegram ids with at least one active submission.
func (r *Submissions) UsersWithActive(ctx context.Context) ([]int64, error) {
	var ids []int64
	q := fmt.Sprintf(
		`SELECT DISTINCT telegram_id FROM %s
		 WHERE status IN ($1, $2)
		 ORDER BY telegram_id`, r.table)
	if err := r.db.SelectContext(ctx, &ids, q, domain.StatusNew, domain.StatusReviewed); err != nil {
		return nil, fmt.Errorf("list %s users: %w", r.table, err)
	}
	return ids, nil
}

// MarkReviewed advances a new submission to reviewed. Submissions already
// past new are returned unchanged.
func (r *Submissions) MarkReviewed(ctx context.Context, id int64) (domain.Submission, error) {
	var s domain.Submission
	q := fmt.Sprintf(
		`UPDATE %s SET status = $2, reviewed_at = now()
		 WHERE id = $1 AND status = $3
		 RETURNING %s`, r.table, submissionColumns)
	err := r.db.GetContext(ctx, &s, q, id, domain.StatusReviewed, domain.StatusNew)
	if errors.Is(err, sql.ErrNoRows) {
		return r.ByID(ctx, id)
	}
	if err != nil {
		return domain.Submission{}, fmt.Errorf("mark %s reviewed: %w", r.table, err)
	}
	return s, nil
}

// Close advances a reviewed or new submission to closed. Closing an already
// closed or missing submission returns ErrSubmissionNotFound without mutation.
func (r *Submissions) Close(ctx context.Context, id int64) (domain.Submission, error) {
	var s domain.Submission
	q := fmt.Sprintf(
		`UPDATE %s SET status = $2, closed_at = now()
		 WHERE id = $1 AND status IN ($3, $4)
		 RETURNING %s`, r.table, submissionColumns)
	err := r.db.GetContext(ctx, &s, q, id, domain.StatusClosed, domain.StatusNew, domain.StatusReviewed)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Submission{}, domain.ErrSubmissionNotFound
	}
	if err != nil {
		return domain.Submission{}, fmt.Errorf("close %s: %w", r.table, err)
	}
	return s, nil
}

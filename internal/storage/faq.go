package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/collegebot/internal/domain"
)

// FAQ persists admin-managed question/answer pairs.
type FAQ struct {
	db *sqlx.DB
}

// NewFAQ returns a FAQ repository over the given connection.
func NewFAQ(db *sqlx.DB) *FAQ {
	return &FAQ{db: db}
}

// List returns all entries ordered by id.
func (r *FAQ) List(ctx context.Context) ([]domain.FAQEntry, error) {
	var out []domain.FAQEntry
	err := r.db.SelectContext(ctx, &out,
		`SELECT id, question, answer, created_at FROM faq_entries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list faq: %w", err)
	}
	return out, nil
}

// ByQuestion returns the entry whose question matches verbatim.
func (r *FAQ) ByQuestion(ctx context.Context, question string) (domain.FAQEntry, error) {
	var e domain.FAQEntry
	err := r.db.GetContext(ctx, &e,
		`SELECT id, question, answer, created_at FROM faq_entries
		 WHERE question = $1 ORDER BY id LIMIT 1`, question)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.FAQEntry{}, domain.ErrFAQNotFound
	}
	if err != nil {
		return domain.FAQEntry{}, fmt.Errorf("get faq by question: %w", err)
	}
	return e, nil
}

// Add inserts a new entry.
func (r *FAQ) Add(ctx context.Context, question, answer string) (domain.FAQEntry, error) {
	var e domain.FAQEntry
	err := r.db.GetContext(ctx, &e,
		`INSERT INTO faq_entries (question, answer)
		 VALUES ($1, $2)
		 RETURNING id, question, answer, created_at`, question, answer)
	if err != nil {
		return domain.FAQEntry{}, fmt.Errorf("add faq: %w", err)
	}
	return e, nil
}

// Delete removes an entry by id.
func (r *FAQ) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM faq_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}
	return requireRow(res, domain.ErrFAQNotFound)
}

// Count returns the number of stored entries.
func (r *FAQ) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT count(*) FROM faq_entries`); err != nil {
		return 0, fmt.Errorf("count faq: %w", err)
	}
	return n, nil
}

package service

import (
	"context"
	"strings"

	"log/slog"

	"github.com/m3rciful/collegebot/core/logger"
	"github.com/m3rciful/collegebot/internal/domain"
	"github.com/m3rciful/collegebot/internal/storage"
)

// FAQ manages the admin-curated question/answer list.
type FAQ struct {
	repo *storage.FAQ
}

// NewFAQ returns the FAQ service.
func NewFAQ(repo *storage.FAQ) *FAQ {
	return &FAQ{repo: repo}
}

// List returns all entries ordered by id.
func (s *FAQ) List(ctx context.Context) ([]domain.FAQEntry, error) {
	return s.repo.List(ctx)
}

// ByQuestion returns the entry matching the question verbatim.
func (s *FAQ) ByQuestion(ctx context.Context, question string) (domain.FAQEntry, error) {
	return s.repo.ByQuestion(ctx, question)
}

// Add stores a new entry. Blank fields are rejected locally.
func (s *FAQ) Add(ctx context.Context, question, answer string) (domain.FAQEntry, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" {
		return domain.FAQEntry{}, domain.ErrEmptyQuestion
	}
	if answer == "" {
		return domain.FAQEntry{}, domain.ErrEmptyAnswer
	}
	e, err := s.repo.Add(ctx, question, answer)
	if err != nil {
		logger.SVCFAQ.Error("add failed",
			slog.String("event", "faq.add"),
			slog.String("err", err.Error()),
		)
		return domain.FAQEntry{}, err
	}
	logger.SVCFAQ.Info("entry added",
		slog.String("event", "faq.add"),
		slog.Int64("faq_id", e.ID),
		slog.Int("question_len", len(question)),
		slog.Int("answer_len", len(answer)),
	)
	return e, nil
}

// Delete removes an entry by id.
func (s *FAQ) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.SVCFAQ.Info("entry deleted",
		slog.String("event", "faq.delete"),
		slog.Int64("faq_id", id),
	)
	return nil
}

package app

import (
	"context"

	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/collegebot/core/logger"
	"github.com/m3rciful/collegebot/internal/storage"
)

// Starter FAQ shown to users of a fresh installation. Admins manage the
// list afterwards, so seeding only happens while the table is empty.
var seedFAQ = []struct {
	question string
	answer   string
}{
	{
		question: "Как подать документы?",
		answer:   "Документы подаются через сайт колледжа или лично в приемной комиссии.",
	},
	{
		question: "Где узнать расписание?",
		answer:   "Расписание доступно на сайте колледжа в разделе 'Студенту'.",
	},
}

// SeedFAQ loads the starter FAQ entries into an empty database.
func SeedFAQ(ctx context.Context, db *sqlx.DB) error {
	repo := storage.NewFAQ(db)

	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.SEED.Debug("faq.skip",
			slog.Int("existing", n),
		)
		return nil
	}

	for _, entry := range seedFAQ {
		if _, err := repo.Add(ctx, entry.question, entry.answer); err != nil {
			return err
		}
	}
	logger.SEED.Info("faq.seeded",
		slog.Int("entries", len(seedFAQ)),
	)
	return nil
}

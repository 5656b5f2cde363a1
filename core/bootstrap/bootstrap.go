package bootstrap

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	coreconfig "github.com/m3rciful/collegebot/core/config"
	coredatabase "github.com/m3rciful/collegebot/core/database"
	"github.com/m3rciful/collegebot/core/logger"
)

// Options control the generic bootstrap pipeline.
type Options struct {
	Config   *coreconfig.Config
	Database coredatabase.Config

	LoggerInit func(*coreconfig.Config) error
	Connect    func(coredatabase.Config) (*sqlx.DB, error)
	Migrate    func(coredatabase.Config) error

	// Seeders run after migrations to load reference data.
	Seeders []Seeder
}

// Result exposes infrastructure initialized by the bootstrap pipeline.
type Result struct {
	DB *sqlx.DB
}

// Run initializes the logger, connects to the database, applies migrations,
// and executes configured seeders.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.InitLogger
	}
	if err := loggerInit(opts.Config); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	connect := opts.Connect
	if connect == nil {
		connect = coredatabase.Connect
	}
	db, err := connect(opts.Database)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: database initialization failed: %w", err)
	}

	migrate := opts.Migrate
	if migrate == nil {
		migrate = coredatabase.RunMigrations
	}
	if err := migrate(opts.Database); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap: migrations failed: %w", err)
	}

	for _, s := range opts.Seeders {
		if s == nil {
			continue
		}
		if err := s.Seed(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("bootstrap: seeding failed: %w", err)
		}
	}

	return &Result{DB: db}, nil
}

package repository

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oterra/waypoint/internal/models"
)

// Repository provides access to the address queue stored in PostgreSQL.
type Repository struct {
	db  Database
	log *slog.Logger
}

// Database is the subset of pgxpool.Pool the repository uses.
// Declared as an interface so tests can substitute a pgxmock pool.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Interface describes the queue operations the resolution service and the
// ingest loop depend on.
type Interface interface {
	FetchPending(ctx context.Context, limit int) ([]models.Task, error)
	SaveCoordinates(ctx context.Context, taskID int, coords models.Coordinates) error
	MarkFailed(ctx context.Context, taskID int, cause string) error
	InsertAddresses(ctx context.Context, addresses []string) (int, error)
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}

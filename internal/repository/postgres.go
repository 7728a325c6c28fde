package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/oterra/waypoint/internal/models"
)

// FetchPending retrieves queued addresses that still need coordinates.
// It returns rows that have a NULL latitude, fewer than 5 resolution attempts,
// and a non-empty address, ordered by creation date and limited to the
// specified count.
func (r *Repository) FetchPending(ctx context.Context, limit int) ([]models.Task, error) {
	var tasks []models.Task
	query := `
		SELECT address_id, address
		FROM public.addresses
		WHERE
			latitude IS NULL
			AND attempts < 5
			AND address IS NOT NULL AND address <> ''
		ORDER BY created_at ASC
		LIMIT $1;
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending addresses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var task models.Task
		if errScan := rows.Scan(&task.ID, &task.Address); errScan != nil {
			return nil, fmt.Errorf("failed to scan pending address: %w", errScan)
		}
		r.log.DebugContext(ctx, "A queued address without coordinates has been received.",
			"ID", task.ID, "Address", task.Address)
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return tasks, nil
}

// SaveCoordinates stores the resolved latitude and longitude for the address
// identified by taskID and clears any previous resolution error.
func (r *Repository) SaveCoordinates(ctx context.Context, taskID int, coords models.Coordinates) error {
	query := `
		UPDATE addresses
		SET
			latitude = $1,
			longitude = $2,
			last_error = NULL
		WHERE
			address_id = $3;
	`

	_, err := r.db.Exec(ctx, query, coords.Latitude, coords.Longitude, taskID)
	if err != nil {
		return fmt.Errorf("failed to update address coordinates: %w", err)
	}

	return nil
}

// MarkFailed increments the resolution attempt count for the address
// identified by taskID and records the failure cause. Addresses reaching
// five attempts are skipped by FetchPending from then on.
func (r *Repository) MarkFailed(ctx context.Context, taskID int, cause string) error {
	query := `
		UPDATE addresses
		SET
			attempts = attempts + 1,
			last_error = $1
		WHERE address_id = $2;
	`

	_, err := r.db.Exec(ctx, query, cause, taskID)
	if err != nil {
		return fmt.Errorf("failed to update resolution error and number of attempts: %w", err)
	}

	return nil
}

// InsertAddresses enqueues a batch of free-form addresses for resolution in a
// single round trip. Blank entries are skipped, and an address that is already
// queued and unresolved is not queued a second time, so re-submitting a file
// after a partial failure cannot produce duplicate work. It returns the number
// of rows actually inserted.
func (r *Repository) InsertAddresses(ctx context.Context, addresses []string) (int, error) {
	query := `
		INSERT INTO addresses (address)
		VALUES ($1)
		ON CONFLICT (address) WHERE latitude IS NULL DO NOTHING;
	`

	batch := &pgx.Batch{}
	for _, address := range addresses {
		address = strings.TrimSpace(address)
		if address == "" {
			continue
		}
		batch.Queue(query, address)
	}

	if batch.Len() == 0 {
		return 0, nil
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("failed to insert address: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	r.log.DebugContext(ctx, "Inserted addresses into the queue", "count", inserted)

	return inserted, nil
}

package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var _ LoadRunRepository = (*LoadRunRepo)(nil)

// LoadRunRepo stores load history. Timestamps are kept as unix milliseconds.
type LoadRunRepo struct {
	db *DB
}

func NewLoadRunRepository(db *DB) *LoadRunRepo {
	return &LoadRunRepo{db: db}
}

func (r *LoadRunRepo) RecordRun(run LoadRun) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	_, err := r.db.Exec(`
		INSERT INTO load_runs (id, resource, started_at, finished_at, item_count, status, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Resource, run.StartedAt.UnixMilli(), run.FinishedAt.UnixMilli(),
		run.ItemCount, run.Status, run.Error)

	if err != nil {
		return fmt.Errorf("failed to record load run: %w", err)
	}

	return nil
}

func (r *LoadRunRepo) GetLatestRun(resource string) (*LoadRun, error) {
	var run LoadRun
	var startedAt, finishedAt int64

	err := r.db.QueryRow(`
		SELECT id, resource, started_at, finished_at, item_count, status, error
		FROM load_runs
		WHERE resource = ?
		ORDER BY finished_at DESC
		LIMIT 1
	`, resource).Scan(&run.ID, &run.Resource, &startedAt, &finishedAt,
		&run.ItemCount, &run.Status, &run.Error)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest load run: %w", err)
	}

	run.StartedAt = time.UnixMilli(startedAt)
	run.FinishedAt = time.UnixMilli(finishedAt)

	return &run, nil
}

func (r *LoadRunRepo) GetRunStats() ([]RunStats, error) {
	rows, err := r.db.Query(`
		SELECT resource,
			COUNT(*) AS total,
			SUM(CASE WHEN status = 'success' THEN 1 ELSE 0 END) AS succeeded,
			SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END) AS failed,
			MAX(CASE WHEN status = 'success' THEN finished_at END) AS last_success
		FROM load_runs
		GROUP BY resource
		ORDER BY resource
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get load run stats: %w", err)
	}
	defer rows.Close()

	stats := []RunStats{}
	for rows.Next() {
		var s RunStats
		var lastSuccess sql.NullInt64
		if err := rows.Scan(&s.Resource, &s.Total, &s.Succeeded, &s.Failed, &lastSuccess); err != nil {
			return nil, fmt.Errorf("failed to scan load run stats: %w", err)
		}
		if lastSuccess.Valid {
			t := time.UnixMilli(lastSuccess.Int64)
			s.LastSuccessAt = &t
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating load run stats: %w", err)
	}

	return stats, nil
}

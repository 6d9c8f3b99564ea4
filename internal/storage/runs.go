package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run represents one search invocation in the catalog.
type Run struct {
	RunID          string
	StartedAt      time.Time
	FinishedAt     *time.Time
	Workers        int
	TotalSolutions int64
}

// RunRepository provides CRUD operations for runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create records the start of a search run and returns its ID.
func (r *RunRepository) Create(workers int) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO runs (run_id, started_at, workers)
		VALUES (?, ?, ?)
	`, id, startedAt.Format(time.RFC3339), workers)
	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}

	return id, nil
}

// Finish marks a run as complete with its final solution count.
func (r *RunRepository) Finish(runID string, totalSolutions int64) error {
	finishedAt := time.Now().UTC()

	_, err := r.db.Exec(`
		UPDATE runs
		SET finished_at = ?, total_solutions = ?
		WHERE run_id = ?
	`, finishedAt.Format(time.RFC3339), totalSolutions, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	return nil
}

// Get retrieves a run by ID.
func (r *RunRepository) Get(runID string) (*Run, error) {
	var run Run
	var startedAtStr string
	var finishedAtStr sql.NullString

	err := r.db.QueryRow(`
		SELECT run_id, started_at, finished_at, workers, total_solutions
		FROM runs
		WHERE run_id = ?
	`, runID).Scan(&run.RunID, &startedAtStr, &finishedAtStr, &run.Workers, &run.TotalSolutions)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	run.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
	if finishedAtStr.Valid {
		t, _ := time.Parse(time.RFC3339, finishedAtStr.String)
		run.FinishedAt = &t
	}

	return &run, nil
}

// GetLast retrieves the most recent run.
func (r *RunRepository) GetLast() (*Run, error) {
	var runID string
	err := r.db.QueryRow(`
		SELECT run_id FROM runs
		ORDER BY started_at DESC
		LIMIT 1
	`).Scan(&runID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last run: %w", err)
	}

	return r.Get(runID)
}

// List retrieves recent runs.
func (r *RunRepository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT run_id, started_at, finished_at, workers, total_solutions
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var startedAtStr string
		var finishedAtStr sql.NullString

		if err := rows.Scan(&run.RunID, &startedAtStr, &finishedAtStr, &run.Workers, &run.TotalSolutions); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		run.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
		if finishedAtStr.Valid {
			t, _ := time.Parse(time.RFC3339, finishedAtStr.String)
			run.FinishedAt = &t
		}

		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Delete deletes a run and all its cataloged solutions (cascading).
func (r *RunRepository) Delete(runID string) error {
	_, err := r.db.Exec("DELETE FROM runs WHERE run_id = ?", runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return nil
}

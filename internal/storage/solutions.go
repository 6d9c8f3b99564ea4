package storage

import (
	"database/sql"
	"fmt"
)

// Solution is one cataloged solution cube.
type Solution struct {
	ID             int64
	RunID          string
	UniquePatterns int
	Perfect        bool
	Stickers       string
}

// BucketCount is a per-classification solution total.
type BucketCount struct {
	UniquePatterns int
	Perfect        bool
	Count          int64
}

// SolutionRepository provides access to cataloged solutions.
type SolutionRepository struct {
	db    *DB
	runID string

	pending []Solution
}

// batchSize is the number of solutions buffered before a transactional
// flush.
const batchSize = 1000

// NewSolutionRepository creates a repository recording against the given
// run.
func NewSolutionRepository(db *DB, runID string) *SolutionRepository {
	return &SolutionRepository{db: db, runID: runID}
}

// RecordSolution buffers one solution for insertion. Buffered rows are
// flushed in batches inside a transaction; call Flush after the search
// drains to persist the tail.
func (r *SolutionRepository) RecordSolution(uniquePatterns int, perfect bool, stickers string) error {
	r.pending = append(r.pending, Solution{
		RunID:          r.runID,
		UniquePatterns: uniquePatterns,
		Perfect:        perfect,
		Stickers:       stickers,
	})
	if len(r.pending) >= batchSize {
		return r.Flush()
	}
	return nil
}

// Flush writes all buffered solutions.
func (r *SolutionRepository) Flush() error {
	if len(r.pending) == 0 {
		return nil
	}
	batch := r.pending
	r.pending = nil

	err := r.db.Transaction(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO solutions (run_id, unique_patterns, perfect, stickers)
			VALUES (?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, s := range batch {
			if _, err := stmt.Exec(s.RunID, s.UniquePatterns, boolToInt(s.Perfect), s.Stickers); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to insert solution batch: %w", err)
	}
	return nil
}

// CountsByBucket returns per-classification totals, optionally restricted
// to one run (empty runID means all runs).
func (r *SolutionRepository) CountsByBucket(runID string) ([]BucketCount, error) {
	query := `
		SELECT unique_patterns, perfect, COUNT(*)
		FROM solutions
	`
	var args []any
	if runID != "" {
		query += " WHERE run_id = ?"
		args = append(args, runID)
	}
	query += `
		GROUP BY unique_patterns, perfect
		ORDER BY perfect, unique_patterns
	`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count solutions: %w", err)
	}
	defer rows.Close()

	var counts []BucketCount
	for rows.Next() {
		var bc BucketCount
		var perfect int
		if err := rows.Scan(&bc.UniquePatterns, &perfect, &bc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan bucket count: %w", err)
		}
		bc.Perfect = perfect != 0
		counts = append(counts, bc)
	}

	return counts, rows.Err()
}

// ListByRun retrieves cataloged solutions for a run, optionally filtered to
// one classification. uniquePatterns 0 means all pattern counts; perfect nil
// means both classes.
func (r *SolutionRepository) ListByRun(runID string, uniquePatterns int, perfect *bool, limit int) ([]Solution, error) {
	query := `
		SELECT id, run_id, unique_patterns, perfect, stickers
		FROM solutions
		WHERE run_id = ?
	`
	args := []any{runID}
	if uniquePatterns > 0 {
		query += " AND unique_patterns = ?"
		args = append(args, uniquePatterns)
	}
	if perfect != nil {
		query += " AND perfect = ?"
		args = append(args, boolToInt(*perfect))
	}
	query += " ORDER BY id LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}
	defer rows.Close()

	var solutions []Solution
	for rows.Next() {
		var s Solution
		var perfectInt int
		if err := rows.Scan(&s.ID, &s.RunID, &s.UniquePatterns, &perfectInt, &s.Stickers); err != nil {
			return nil, fmt.Errorf("failed to scan solution: %w", err)
		}
		s.Perfect = perfectInt != 0
		solutions = append(solutions, s)
	}

	return solutions, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

package repository

import (
	"database/sql"
	"fmt"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/models"
)

// ReportRepository persists cleaning run audit trails
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// SaveRun stores a cleaning run and its per-stage tallies
func (r *ReportRepository) SaveRun(run models.CleaningRun) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO cleaning_runs
		(run_id, started_at, finished_at, source_file, input_count, survivor_count)
		VALUES (?, ?, ?, ?, ?, ?)`,
		run.RunID, run.StartedAt, run.FinishedAt, run.SourceFile,
		run.InputCount, run.SurvivorCount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert cleaning run: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO cleaning_log (run_id, stage_order, stage, removed)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare log insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range run.Stages {
		if _, err := stmt.Exec(run.RunID, i+1, s.Stage, s.Removed); err != nil {
			return fmt.Errorf("failed to insert log stage %s: %w", s.Stage, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cleaning run: %w", err)
	}
	return nil
}

// GetLatestRun returns the most recent cleaning run, nil when none exist
func (r *ReportRepository) GetLatestRun() (*models.CleaningRun, error) {
	row := r.db.QueryRow(`SELECT run_id, started_at, finished_at, source_file,
		input_count, survivor_count
		FROM cleaning_runs ORDER BY started_at DESC, run_id DESC LIMIT 1`)

	var run models.CleaningRun
	err := row.Scan(&run.RunID, &run.StartedAt, &run.FinishedAt,
		&run.SourceFile, &run.InputCount, &run.SurvivorCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest run: %w", err)
	}

	if run.Stages, err = r.getStages(run.RunID); err != nil {
		return nil, err
	}
	return &run, nil
}

// GetRuns returns all cleaning runs, newest first
func (r *ReportRepository) GetRuns() ([]models.CleaningRun, error) {
	rows, err := r.db.Query(`SELECT run_id, started_at, finished_at, source_file,
		input_count, survivor_count
		FROM cleaning_runs ORDER BY started_at DESC, run_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cleaning runs: %w", err)
	}
	defer rows.Close()

	var runs []models.CleaningRun
	for rows.Next() {
		var run models.CleaningRun
		if err := rows.Scan(&run.RunID, &run.StartedAt, &run.FinishedAt,
			&run.SourceFile, &run.InputCount, &run.SurvivorCount); err != nil {
			return nil, fmt.Errorf("failed to scan cleaning run: %w", err)
		}
		runs = append(runs, run)
	}

	for i := range runs {
		if runs[i].Stages, err = r.getStages(runs[i].RunID); err != nil {
			return nil, err
		}
	}

	return runs, nil
}

func (r *ReportRepository) getStages(runID string) ([]models.StageResult, error) {
	rows, err := r.db.Query(`SELECT stage, removed FROM cleaning_log
		WHERE run_id = ? ORDER BY stage_order`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cleaning log: %w", err)
	}
	defer rows.Close()

	var stages []models.StageResult
	for rows.Next() {
		var s models.StageResult
		if err := rows.Scan(&s.Stage, &s.Removed); err != nil {
			return nil, fmt.Errorf("failed to scan log stage: %w", err)
		}
		stages = append(stages, s)
	}
	return stages, nil
}

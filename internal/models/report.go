package models

import "time"

// StageResult records how many records one cleaning stage removed.
// Results are appended in execution order; the slice order is the audit trail.
type StageResult struct {
	Stage   string `json:"stage" db:"stage"`
	Removed int    `json:"removed" db:"removed"`
}

// CleaningReport is the audit trail of one pipeline run. Given identical
// input and zone set the counts reproduce exactly: the pipeline consults no
// clock and no randomness beyond the records' own timestamps.
type CleaningReport struct {
	InputCount    int           `json:"input_count"`
	Stages        []StageResult `json:"stages"`
	SurvivorCount int           `json:"survivor_count"`
}

// TotalRemoved sums removals across all stages
func (r *CleaningReport) TotalRemoved() int {
	total := 0
	for _, s := range r.Stages {
		total += s.Removed
	}
	return total
}

// Append records a stage tally. The report is append-only during a run.
func (r *CleaningReport) Append(stage string, removed int) {
	r.Stages = append(r.Stages, StageResult{Stage: stage, Removed: removed})
}

// CleaningRun is a persisted pipeline run: the report plus the identity and
// timing metadata the serving layer attaches around it.
type CleaningRun struct {
	RunID         string        `json:"run_id" db:"run_id"`
	StartedAt     time.Time     `json:"started_at" db:"started_at"`
	FinishedAt    time.Time     `json:"finished_at" db:"finished_at"`
	SourceFile    string        `json:"source_file,omitempty" db:"source_file"`
	InputCount    int           `json:"input_count" db:"input_count"`
	SurvivorCount int           `json:"survivor_count" db:"survivor_count"`
	Stages        []StageResult `json:"stages"`
}

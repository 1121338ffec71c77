package domain

import "time"

// CleanRun represents a persisted cleaning run for reproducibility.
type CleanRun struct {
	ID string

	DatasetDir string
	CleanedDir string

	StartedAt  time.Time
	FinishedAt time.Time

	Classes []ClassStats
	Totals  ClassStats
	Files   []VideoReport
}

// FetchRun represents a persisted fetch (download) run.
type FetchRun struct {
	ID string

	Repo     string
	Revision string

	StartedAt  time.Time
	FinishedAt time.Time

	Downloaded int
	Failed     int
	Manifest   Manifest

	GroundTruth    string // local path of the labels file, empty when the repo has none
	GroundTruthErr error  // labels download failure; does not fail the run
}

package database

import (
	"time"
)

const (
	ResourcePublications = "publications"
	ResourceAuthors      = "authors"

	RunStatusSuccess = "success"
	RunStatusFailed  = "failed"
)

// LoadRun records the outcome of one upstream fetch. Payloads are not stored.
type LoadRun struct {
	ID         string
	Resource   string
	StartedAt  time.Time
	FinishedAt time.Time
	ItemCount  int
	Status     string
	Error      string
}

type RunStats struct {
	Resource      string
	Total         int
	Succeeded     int
	Failed        int
	LastSuccessAt *time.Time
}

package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lysyi3m/pubfront/app/blog"
	"github.com/lysyi3m/pubfront/app/database"
)

type LoadPublicationsTask struct {
	Task
	fetcher PublicationFetcher
	catalog *blog.Catalog
	runRepo database.LoadRunRepository
}

func NewLoadPublicationsTask(fetcher PublicationFetcher, catalog *blog.Catalog, runRepo database.LoadRunRepository) *LoadPublicationsTask {
	return &LoadPublicationsTask{
		Task:    NewTask(TaskTypeLoadPublications),
		fetcher: fetcher,
		catalog: catalog,
		runRepo: runRepo,
	}
}

func (t *LoadPublicationsTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	startedAt := time.Now()

	publications, err := t.fetcher.FetchPublications(ctx)
	if err != nil {
		recordRun(t.runRepo, database.ResourcePublications, startedAt, 0, err)
		return fmt.Errorf("failed to load publications: %w", err)
	}

	invalid, normalized := 0, 0
	for _, publication := range publications {
		date := blog.ParseDate(publication.Date)
		if !date.Valid {
			invalid++
		} else if date.Normalized {
			normalized++
		}
	}
	if invalid > 0 || normalized > 0 {
		slog.Warn("Publications with unusable dates", "invalid", invalid, "out_of_range", normalized)
	}

	t.catalog.ReplacePublications(publications)
	recordRun(t.runRepo, database.ResourcePublications, startedAt, len(publications), nil)

	slog.Info("Task completed",
		"type", "LoadPublications",
		"duration", t.GetDuration(),
		"total", len(publications))

	return nil
}

// recordRun stores the outcome of a load. History is best effort and
// never fails the load itself.
func recordRun(runRepo database.LoadRunRepository, resource string, startedAt time.Time, count int, loadErr error) {
	run := database.LoadRun{
		Resource:   resource,
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
		ItemCount:  count,
		Status:     database.RunStatusSuccess,
	}
	if loadErr != nil {
		run.Status = database.RunStatusFailed
		run.Error = loadErr.Error()
	}

	if err := runRepo.RecordRun(run); err != nil {
		slog.Warn("Failed to record load run", "resource", resource, "error", err)
	}
}

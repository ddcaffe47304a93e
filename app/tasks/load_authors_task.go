package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lysyi3m/pubfront/app/blog"
	"github.com/lysyi3m/pubfront/app/database"
)

type LoadAuthorsTask struct {
	Task
	fetcher AuthorFetcher
	catalog *blog.Catalog
	runRepo database.LoadRunRepository
}

func NewLoadAuthorsTask(fetcher AuthorFetcher, catalog *blog.Catalog, runRepo database.LoadRunRepository) *LoadAuthorsTask {
	return &LoadAuthorsTask{
		Task:    NewTask(TaskTypeLoadAuthors),
		fetcher: fetcher,
		catalog: catalog,
		runRepo: runRepo,
	}
}

func (t *LoadAuthorsTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	startedAt := time.Now()

	authors, err := t.fetcher.FetchAuthors(ctx)
	if err != nil {
		recordRun(t.runRepo, database.ResourceAuthors, startedAt, 0, err)
		return fmt.Errorf("failed to load authors: %w", err)
	}

	t.catalog.ReplaceAuthors(authors)
	recordRun(t.runRepo, database.ResourceAuthors, startedAt, len(authors), nil)

	slog.Info("Task completed",
		"type", "LoadAuthors",
		"duration", t.GetDuration(),
		"total", len(authors))

	return nil
}

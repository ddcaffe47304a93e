package tasks

import (
	"context"

	"github.com/lysyi3m/pubfront/app/blog"
)

// TaskSchedulerInterface defines the interface for task scheduling operations.
// Used by the main application to keep the catalog loaded in the background.
// Example usage:
//
//	scheduler := NewScheduler(catalog, client, runRepo, interval, workerCount)
//	scheduler.Start()
//	defer scheduler.Stop()
//	scheduler.EnqueueTask(NewLoadAuthorsTask(...))
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}

type PublicationFetcher interface {
	FetchPublications(ctx context.Context) ([]blog.Publication, error)
}

type AuthorFetcher interface {
	FetchAuthors(ctx context.Context) ([]blog.Author, error)
}

type Fetcher interface {
	PublicationFetcher
	AuthorFetcher
}

package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lysyi3m/pubfront/app/blog"
	"github.com/lysyi3m/pubfront/app/database"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

// Scheduler runs load tasks on a worker pool. Both loads are enqueued at
// startup and, when interval > 0, again on every tick. Failed loads are
// logged and left for the next tick.
type Scheduler struct {
	catalog     *blog.Catalog
	fetcher     Fetcher
	runRepo     database.LoadRunRepository
	interval    time.Duration
	workerCount int
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	taskQueue   chan TaskInterface
}

func NewScheduler(catalog *blog.Catalog, fetcher Fetcher, runRepo database.LoadRunRepository,
	interval time.Duration, workerCount int) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	if workerCount < 1 {
		workerCount = 1
	}

	return &Scheduler{
		catalog:     catalog,
		fetcher:     fetcher,
		runRepo:     runRepo,
		interval:    interval,
		workerCount: workerCount,
		ctx:         ctx,
		cancel:      cancel,
		taskQueue:   make(chan TaskInterface, 16),
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < s.workerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	s.enqueueLoadTasks()

	if s.interval <= 0 {
		slog.Debug("Periodic reload disabled")
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.enqueueLoadTasks()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Scheduler) EnqueueTask(task TaskInterface) error {
	select {
	case s.taskQueue <- task:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return fmt.Errorf("task queue is full")
	}
}

// enqueueLoadTasks queues the two loads independently; neither waits on
// the other.
func (s *Scheduler) enqueueLoadTasks() {
	publicationsTask := NewLoadPublicationsTask(s.fetcher, s.catalog, s.runRepo)
	if err := s.EnqueueTask(publicationsTask); err != nil {
		slog.Warn("Failed to enqueue LoadPublicationsTask", "error", err)
	}

	authorsTask := NewLoadAuthorsTask(s.fetcher, s.catalog, s.runRepo)
	if err := s.EnqueueTask(authorsTask); err != nil {
		slog.Warn("Failed to enqueue LoadAuthorsTask", "error", err)
	}
}

func (s *Scheduler) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case task, ok := <-s.taskQueue:
			if !ok {
				return
			}
			s.executeTask(id, task)

		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) executeTask(workerID int, task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(s.ctx, 5*time.Minute)
	defer cancel()

	if err := task.Execute(taskCtx); err != nil {
		slog.Error("Worker task execution failed", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "duration", task.GetDuration(), "error", err)
	}
}

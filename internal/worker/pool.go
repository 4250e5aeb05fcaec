package worker

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"metamorfose-backend/config"
	"metamorfose-backend/internal/apperr"
	"metamorfose-backend/internal/model"
	"metamorfose-backend/internal/store"
)

// ErrPoolStopped is returned by Dispatch once the workers have shut down.
var ErrPoolStopped = errors.New("worker pool is stopped")

// Runner executes one batch routine.
type Runner interface {
	RunBatchJob(ctx context.Context, jobType model.JobType) (string, error)
}

// Pool runs queued batch jobs on a fixed set of goroutines.
// Jobs that find the queue full wait in a backlog that a feeder
// goroutine drains in arrival order.
type Pool struct {
	size      int
	jobs      chan model.BatchJob
	done      chan struct{}
	mu        sync.Mutex
	backlog   []model.BatchJob
	wake      chan struct{}
	runner    Runner
	store     store.Store
	onSuccess func(model.BatchJob)
	now       func() time.Time
}

// NewPool creates a new worker pool.
func NewPool(cfg config.WorkerPoolConfig, runner Runner, s store.Store) *Pool {
	return &Pool{
		size:   cfg.Size,
		jobs:   make(chan model.BatchJob, cfg.QueueSize),
		done:   make(chan struct{}),
		wake:   make(chan struct{}, 1),
		runner: runner,
		store:  s,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// OnSuccess registers a hook called after each job that succeeds.
// It must be set before Start.
func (wp *Pool) OnSuccess(fn func(model.BatchJob)) {
	wp.onSuccess = fn
}

// Start launches the worker goroutines. They exit when ctx is cancelled.
func (wp *Pool) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		close(wp.done)
	}()
	go wp.feed(ctx)
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *Pool) worker(ctx context.Context, id int) {
	log.Printf("Worker %d started", id)
	for {
		select {
		case job := <-wp.jobs:
			log.Printf("Worker %d running job %s (%s)", id, job.ID, job.JobType)
			wp.run(ctx, job)
		case <-ctx.Done():
			log.Printf("Worker %d shutting down", id)
			return
		}
	}
}

// Dispatch queues a job without waiting for a free worker. A job that finds
// the queue full is kept in the backlog and stays QUEUED in the ledger.
func (wp *Pool) Dispatch(_ context.Context, job model.BatchJob) error {
	select {
	case <-wp.done:
		return ErrPoolStopped
	default:
	}

	wp.mu.Lock()
	defer wp.mu.Unlock()

	if len(wp.backlog) == 0 {
		select {
		case wp.jobs <- job:
			return nil
		default:
		}
	}

	wp.backlog = append(wp.backlog, job)
	log.Printf("Job %s waiting for a free worker (%d in backlog)", job.ID, len(wp.backlog))
	select {
	case wp.wake <- struct{}{}:
	default:
	}
	return nil
}

// Backlog reports how many jobs are waiting for room in the queue.
func (wp *Pool) Backlog() int {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	return len(wp.backlog)
}

// feed moves backlog jobs into the queue as workers free up.
func (wp *Pool) feed(ctx context.Context) {
	for {
		wp.mu.Lock()
		if len(wp.backlog) == 0 {
			wp.mu.Unlock()
			select {
			case <-wp.wake:
				continue
			case <-ctx.Done():
				return
			}
		}
		// Only feed removes from the backlog, so the head is stable.
		next := wp.backlog[0]
		wp.mu.Unlock()

		select {
		case wp.jobs <- next:
			wp.mu.Lock()
			wp.backlog[0] = model.BatchJob{}
			wp.backlog = wp.backlog[1:]
			wp.mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

func (wp *Pool) run(ctx context.Context, job model.BatchJob) {
	// The ledger must record the outcome even if shutdown starts mid-run.
	ledgerCtx := context.WithoutCancel(ctx)

	if err := wp.store.MarkRunning(ledgerCtx, job.ID, wp.now()); err != nil {
		log.Printf("Job %s: failed to mark running: %v", job.ID, err)
	}

	result, runErr := wp.runner.RunBatchJob(ctx, job.JobType)
	if runErr != nil {
		log.Printf("Job %s (%s) failed: %v", job.ID, job.JobType, runErr)
		// Only the sanitized message reaches the ledger, which clients can read.
		runErr = errors.New(apperr.PublicMessage(runErr))
	}

	if err := wp.store.MarkFinished(ledgerCtx, job.ID, wp.now(), result, runErr); err != nil {
		log.Printf("Job %s: failed to record outcome: %v", job.ID, err)
	}

	if runErr == nil {
		log.Printf("Job %s (%s) succeeded", job.ID, job.JobType)
		if wp.onSuccess != nil {
			wp.onSuccess(job)
		}
	}
}

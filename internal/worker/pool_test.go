package worker

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"metamorfose-backend/config"
	"metamorfose-backend/internal/apperr"
	"metamorfose-backend/internal/model"
	"metamorfose-backend/internal/store"
)

// mockRunner is a mock implementation of the Runner interface.
type mockRunner struct {
	RunFunc func(ctx context.Context, jobType model.JobType) (string, error)
}

// RunBatchJob calls the mock RunFunc.
func (m *mockRunner) RunBatchJob(ctx context.Context, jobType model.JobType) (string, error) {
	return m.RunFunc(ctx, jobType)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.BatchJob{}))
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return store.NewGormStore(db)
}

func queueJob(t *testing.T, s store.Store, id string, jobType model.JobType) model.BatchJob {
	t.Helper()
	job := model.BatchJob{ID: id, JobType: jobType, Source: model.SourceAPI, CreatedAt: time.Now().UTC()}
	require.NoError(t, s.CreateJob(context.Background(), &job))
	return job
}

func waitForDone(t *testing.T, s store.Store, id string) *model.BatchJob {
	t.Helper()
	var job *model.BatchJob
	require.Eventually(t, func() bool {
		var err error
		job, err = s.GetJob(context.Background(), id)
		return err == nil && job.Done()
	}, 2*time.Second, 10*time.Millisecond)
	return job
}

func TestPool_Dispatch(t *testing.T) {
	wp := NewPool(config.WorkerPoolConfig{Size: 1, QueueSize: 1}, &mockRunner{}, nil)

	require.NoError(t, wp.Dispatch(context.Background(), model.BatchJob{ID: "j1"}))

	select {
	case job := <-wp.jobs:
		assert.Equal(t, "j1", job.ID)
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for job to be dispatched")
	}
}

func TestPool_DispatchDoesNotWaitForRoom(t *testing.T) {
	// Not started, so nothing drains the queue.
	wp := NewPool(config.WorkerPoolConfig{Size: 1, QueueSize: 1}, &mockRunner{}, nil)
	require.NoError(t, wp.Dispatch(context.Background(), model.BatchJob{ID: "fills-queue"}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	start := time.Now()
	for _, id := range []string{"b1", "b2"} {
		require.NoError(t, wp.Dispatch(ctx, model.BatchJob{ID: id}))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
	assert.Equal(t, 2, wp.Backlog())
}

func TestPool_BacklogDrainsInOrder(t *testing.T) {
	s := newTestStore(t)

	release := make(chan struct{})
	var mu sync.Mutex
	var order []string
	runner := &mockRunner{
		RunFunc: func(ctx context.Context, jobType model.JobType) (string, error) {
			<-release
			return "done", nil
		},
	}

	wp := NewPool(config.WorkerPoolConfig{Size: 1, QueueSize: 1}, runner, s)
	wp.OnSuccess(func(job model.BatchJob) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, job.ID)
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	ids := []string{"q1", "q2", "q3", "q4"}
	start := time.Now()
	for _, id := range ids {
		require.NoError(t, wp.Dispatch(ctx, queueJob(t, s, id, model.JobStats)))
	}
	assert.Less(t, time.Since(start), time.Second, "dispatch must not wait for the running job")

	// Jobs behind the running one are still queued in the ledger.
	waiting, err := s.GetJob(context.Background(), "q4")
	require.NoError(t, err)
	assert.Equal(t, model.JobQueued, waiting.Status)

	close(release)
	for _, id := range ids {
		assert.Equal(t, model.JobSucceeded, waitForDone(t, s, id).Status)
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(order) == len(ids)
	}, time.Second, 5*time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, ids, order)
	assert.Equal(t, 0, wp.Backlog())
}

func TestPool_DispatchAfterStop(t *testing.T) {
	// No workers, so nothing drains the queue.
	wp := NewPool(config.WorkerPoolConfig{Size: 0, QueueSize: 1}, &mockRunner{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	wp.Start(ctx)
	cancel()

	require.Eventually(t, func() bool {
		return errors.Is(wp.Dispatch(context.Background(), model.BatchJob{ID: "late"}), ErrPoolStopped)
	}, time.Second, 5*time.Millisecond)
}

func TestPool_WorkerLogic(t *testing.T) {
	s := newTestStore(t)

	var mu sync.Mutex
	var succeeded []string
	runner := &mockRunner{
		RunFunc: func(ctx context.Context, jobType model.JobType) (string, error) {
			if jobType == model.JobCleanup {
				return "", apperr.Gateway("automatic processing failed", errors.New("ORA-01013: user requested cancel"))
			}
			return "report for " + string(jobType), nil
		},
	}

	wp := NewPool(config.WorkerPoolConfig{Size: 2, QueueSize: 4}, runner, s)
	wp.OnSuccess(func(job model.BatchJob) {
		mu.Lock()
		defer mu.Unlock()
		succeeded = append(succeeded, job.ID)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	t.Run("successful job records its report", func(t *testing.T) {
		job := queueJob(t, s, "ok-1", model.JobStats)
		require.NoError(t, wp.Dispatch(ctx, job))

		done := waitForDone(t, s, "ok-1")
		assert.Equal(t, model.JobSucceeded, done.Status)
		assert.Equal(t, "report for STATS", done.Result)
		assert.NotNil(t, done.StartedAt)
		assert.NotNil(t, done.FinishedAt)

		require.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return len(succeeded) == 1 && succeeded[0] == "ok-1"
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("failed job stores only the sanitized message", func(t *testing.T) {
		job := queueJob(t, s, "fail-1", model.JobCleanup)
		require.NoError(t, wp.Dispatch(ctx, job))

		done := waitForDone(t, s, "fail-1")
		assert.Equal(t, model.JobFailed, done.Status)
		assert.Equal(t, "automatic processing failed", done.Error)
		assert.NotContains(t, done.Error, "ORA-")

		mu.Lock()
		defer mu.Unlock()
		assert.NotContains(t, succeeded, "fail-1")
	})
}

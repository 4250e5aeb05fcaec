package store

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"metamorfose-backend/internal/model"
)

// ErrJobNotFound is returned when no job matches the requested id.
var ErrJobNotFound = errors.New("job not found")

// maxErrorLen bounds the stored failure text to the column size.
const maxErrorLen = 1024

// Store defines the persistence operations for the batch job ledger.
type Store interface {
	CreateJob(ctx context.Context, job *model.BatchJob) error
	MarkRunning(ctx context.Context, id string, at time.Time) error
	MarkFinished(ctx context.Context, id string, at time.Time, result string, runErr error) error
	GetJob(ctx context.Context, id string) (*model.BatchJob, error)
	ListJobs(ctx context.Context, limit int) ([]model.BatchJob, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// CreateJob inserts a new job in the QUEUED state.
func (s *gormStore) CreateJob(ctx context.Context, job *model.BatchJob) error {
	if job.Status == "" {
		job.Status = model.JobQueued
	}
	if err := s.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job %s: %w", job.ID, err)
	}
	return nil
}

// MarkRunning moves a job to RUNNING.
func (s *gormStore) MarkRunning(ctx context.Context, id string, at time.Time) error {
	return s.update(ctx, id, map[string]any{
		"status":     model.JobRunning,
		"started_at": at,
	})
}

// MarkFinished records the outcome of a job. A nil runErr means success.
func (s *gormStore) MarkFinished(ctx context.Context, id string, at time.Time, result string, runErr error) error {
	fields := map[string]any{
		"status":      model.JobSucceeded,
		"result":      result,
		"finished_at": at,
	}
	if runErr != nil {
		msg := truncate(runErr.Error(), maxErrorLen)
		fields["status"] = model.JobFailed
		fields["error"] = msg
	}
	return s.update(ctx, id, fields)
}

func (s *gormStore) update(ctx context.Context, id string, fields map[string]any) error {
	res := s.db.WithContext(ctx).Model(&model.BatchJob{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("failed to update job %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update job %s: %w", id, ErrJobNotFound)
	}
	return nil
}

// GetJob loads one job by id.
func (s *gormStore) GetJob(ctx context.Context, id string) (*model.BatchJob, error) {
	var job model.BatchJob
	err := s.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load job %s: %w", id, err)
	}
	return &job, nil
}

// ListJobs returns the most recent jobs first.
func (s *gormStore) ListJobs(ctx context.Context, limit int) ([]model.BatchJob, error) {
	var jobs []model.BatchJob
	if err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

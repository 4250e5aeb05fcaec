package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"metamorfose-backend/internal/apperr"
	"metamorfose-backend/internal/cache"
	"metamorfose-backend/internal/gateway"
	"metamorfose-backend/internal/model"
	"metamorfose-backend/internal/store"
)

// DefaultJobListLimit caps ListJobs when the caller gives no limit.
const DefaultJobListLimit = 50

// Dispatcher hands a queued job to the background workers.
type Dispatcher interface {
	Dispatch(ctx context.Context, job model.BatchJob) error
}

// Service validates requests and delegates to the procedure gateway.
type Service struct {
	gw         gateway.Gateway
	dashboard  *cache.Dashboard
	jobs       store.Store
	dispatcher Dispatcher
	now        func() time.Time
}

// New creates the application service.
func New(gw gateway.Gateway, dashboard *cache.Dashboard, jobs store.Store, dispatcher Dispatcher) *Service {
	return &Service{
		gw:         gw,
		dashboard:  dashboard,
		jobs:       jobs,
		dispatcher: dispatcher,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func requireID(id, what string) (string, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return "", apperr.Validation(what + " must not be blank")
	}
	return trimmed, nil
}

// GetDashboard returns the plants of userID, or of every user when userID is nil.
// Non-empty results are served from the cache on later calls.
func (s *Service) GetDashboard(ctx context.Context, userID *string) ([]model.PlantDashboardRecord, error) {
	if userID != nil {
		id, err := requireID(*userID, "user id")
		if err != nil {
			return nil, err
		}
		userID = &id
	}

	if plants, ok := s.dashboard.Get(userID); ok {
		return plants, nil
	}

	generation := s.dashboard.Generation()
	plants, err := s.gw.FetchDashboard(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(plants) == 0 {
		log.Printf("no plants found for user %s", describe(userID))
	} else {
		log.Printf("found %d plants for user %s", len(plants), describe(userID))
	}
	s.dashboard.Put(userID, generation, plants)
	return plants, nil
}

// GetAllDashboard returns the plants of every user.
func (s *Service) GetAllDashboard(ctx context.Context) ([]model.PlantDashboardRecord, error) {
	return s.GetDashboard(ctx, nil)
}

func validJobType(raw string) (model.JobType, error) {
	jobType, ok := model.ParseJobType(raw)
	if !ok {
		return "", apperr.Validation(fmt.Sprintf("invalid processing type %q; expected one of COMPLETO, ALERTAS, LIMPEZA, STATS", raw))
	}
	return jobType, nil
}

// RunJob runs a batch routine and waits for its report.
func (s *Service) RunJob(ctx context.Context, rawType string) (string, error) {
	jobType, err := validJobType(rawType)
	if err != nil {
		return "", err
	}

	log.Printf("starting automatic processing %s", jobType)
	report, err := s.gw.RunBatchJob(ctx, jobType)
	if err != nil {
		return "", err
	}

	// Batch routines rewrite the figures the dashboard shows.
	s.dashboard.Flush()
	log.Printf("automatic processing %s completed", jobType)
	return report, nil
}

// RunJobAsync queues a batch routine and returns its ledger entry at once.
func (s *Service) RunJobAsync(ctx context.Context, rawType string, source model.JobSource) (*model.BatchJob, error) {
	jobType, err := validJobType(rawType)
	if err != nil {
		return nil, err
	}

	job := &model.BatchJob{
		ID:        uuid.NewString(),
		JobType:   jobType,
		Source:    source,
		Status:    model.JobQueued,
		CreatedAt: s.now(),
	}
	if err := s.jobs.CreateJob(ctx, job); err != nil {
		return nil, apperr.Internal("failed to queue processing", err)
	}

	if err := s.dispatcher.Dispatch(ctx, *job); err != nil {
		if markErr := s.jobs.MarkFinished(context.WithoutCancel(ctx), job.ID, s.now(), "", errors.New("not dispatched")); markErr != nil {
			log.Printf("job %s: failed to record dispatch failure: %v", job.ID, markErr)
		}
		return nil, apperr.Internal("failed to start processing", err)
	}

	log.Printf("queued %s processing %s as job %s", source, jobType, job.ID)
	return job, nil
}

// GetJob returns the ledger entry of an asynchronous run.
func (s *Service) GetJob(ctx context.Context, id string) (*model.BatchJob, error) {
	id, err := requireID(id, "job id")
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.GetJob(ctx, id)
	if errors.Is(err, store.ErrJobNotFound) {
		return nil, apperr.NotFound("job " + id + " not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to load job", err)
	}
	return job, nil
}

// ListJobs returns the most recent asynchronous runs.
func (s *Service) ListJobs(ctx context.Context, limit int) ([]model.BatchJob, error) {
	if limit <= 0 || limit > DefaultJobListLimit {
		limit = DefaultJobListLimit
	}
	jobs, err := s.jobs.ListJobs(ctx, limit)
	if err != nil {
		return nil, apperr.Internal("failed to list jobs", err)
	}
	return jobs, nil
}

// RegisterAlerts records critical alerts for plantID, or for every plant when
// plantID is nil.
func (s *Service) RegisterAlerts(ctx context.Context, plantID *string) (string, error) {
	if plantID != nil {
		id, err := requireID(*plantID, "plant id")
		if err != nil {
			return "", err
		}
		plantID = &id
	}

	summary, err := s.gw.RegisterAlerts(ctx, plantID)
	if err != nil {
		return "", err
	}
	log.Printf("critical alerts registered for plant %s", describe(plantID))
	return summary, nil
}

// GetHealthIndex returns the computed health index of a plant.
func (s *Service) GetHealthIndex(ctx context.Context, plantID string) (float64, error) {
	id, err := requireID(plantID, "plant id")
	if err != nil {
		return 0, err
	}
	return s.gw.ComputeHealthIndex(ctx, id)
}

// GetFormattedStatus returns the human-readable status of a plant.
func (s *Service) GetFormattedStatus(ctx context.Context, plantID string) (string, error) {
	id, err := requireID(plantID, "plant id")
	if err != nil {
		return "", err
	}
	return s.gw.FormatStatus(ctx, id)
}

func describe(id *string) string {
	if id == nil {
		return "<all>"
	}
	return *id
}

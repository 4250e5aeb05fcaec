package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"metamorfose-backend/config"
	"metamorfose-backend/internal/model"
)

// Trigger queues a batch job.
type Trigger interface {
	RunJobAsync(ctx context.Context, jobType string, source model.JobSource) (*model.BatchJob, error)
}

// Scheduler fires configured batch jobs on cron schedules.
type Scheduler struct {
	cron    *cron.Cron
	trigger Trigger
	ctx     context.Context
}

// New validates entries and registers them. Nothing runs until Start.
func New(ctx context.Context, entries []config.ScheduledEntry, trigger Trigger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(),
		trigger: trigger,
		ctx:     ctx,
	}

	for _, entry := range entries {
		jobType, ok := model.ParseJobType(entry.JobType)
		if !ok {
			return nil, fmt.Errorf("scheduler: unknown job type %q", entry.JobType)
		}
		if _, err := s.cron.AddFunc(entry.Spec, s.fire(jobType)); err != nil {
			return nil, fmt.Errorf("scheduler: invalid spec %q for %s: %w", entry.Spec, jobType, err)
		}
		log.Printf("Scheduled %s processing at %q", jobType, entry.Spec)
	}

	return s, nil
}

func (s *Scheduler) fire(jobType model.JobType) func() {
	return func() {
		job, err := s.trigger.RunJobAsync(s.ctx, string(jobType), model.SourceScheduler)
		if err != nil {
			log.Printf("Scheduled %s processing could not be queued: %v", jobType, err)
			return
		}
		log.Printf("Scheduled %s processing queued as job %s", jobType, job.ID)
	}
}

// Start runs the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for running firings to return.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Len reports the number of registered entries.
func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}

package model

import (
	"strings"
	"time"
)

// JobType names one of the backend processing routines.
type JobType string

const (
	JobComplete JobType = "COMPLETO"
	JobAlerts   JobType = "ALERTAS"
	JobCleanup  JobType = "LIMPEZA"
	JobStats    JobType = "STATS"
)

// ParseJobType normalizes raw and reports whether it names a known routine.
func ParseJobType(raw string) (JobType, bool) {
	switch t := JobType(strings.ToUpper(strings.TrimSpace(raw))); t {
	case JobComplete, JobAlerts, JobCleanup, JobStats:
		return t, true
	default:
		return t, false
	}
}

// JobStatus is the lifecycle state of a queued batch run.
type JobStatus string

const (
	JobQueued    JobStatus = "QUEUED"
	JobRunning   JobStatus = "RUNNING"
	JobSucceeded JobStatus = "SUCCEEDED"
	JobFailed    JobStatus = "FAILED"
)

// JobSource records who asked for the run.
type JobSource string

const (
	SourceAPI       JobSource = "API"
	SourceScheduler JobSource = "SCHEDULER"
)

// BatchJob is the ledger entry for one asynchronous batch run.
type BatchJob struct {
	ID         string     `gorm:"primaryKey;size:36" json:"id"`
	JobType    JobType    `gorm:"size:16;not null;index" json:"job_type"`
	Source     JobSource  `gorm:"size:16;not null" json:"source"`
	Status     JobStatus  `gorm:"size:16;not null;index" json:"status"`
	Result     string     `gorm:"type:text" json:"result,omitempty"`
	Error      string     `gorm:"size:1024" json:"error,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// Done reports whether the job reached a terminal state.
func (j BatchJob) Done() bool {
	return j.Status == JobSucceeded || j.Status == JobFailed
}

// Package gatewaytest provides an in-memory Gateway for tests.
package gatewaytest

import (
	"context"
	"strconv"
	"sync"

	"metamorfose-backend/internal/model"
)

// Fake is a scriptable Gateway. Every call is counted; the funcs decide the outcome.
type Fake struct {
	mu    sync.Mutex
	calls map[string]int

	DashboardFunc func(ctx context.Context, userID *string) ([]model.PlantDashboardRecord, error)
	BatchFunc     func(ctx context.Context, jobType model.JobType) (string, error)
	AlertsFunc    func(ctx context.Context, plantID *string) (string, error)
	HealthFunc    func(ctx context.Context, plantID string) (float64, error)
	StatusFunc    func(ctx context.Context, plantID string) (string, error)
}

// Calls reports how often op was invoked.
func (f *Fake) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *Fake) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[op]++
}

// FetchDashboard implements gateway.Gateway.
func (f *Fake) FetchDashboard(ctx context.Context, userID *string) ([]model.PlantDashboardRecord, error) {
	f.record("FetchDashboard")
	if f.DashboardFunc == nil {
		return nil, nil
	}
	return f.DashboardFunc(ctx, userID)
}

// RunBatchJob implements gateway.Gateway.
func (f *Fake) RunBatchJob(ctx context.Context, jobType model.JobType) (string, error) {
	f.record("RunBatchJob")
	if f.BatchFunc == nil {
		return "", nil
	}
	return f.BatchFunc(ctx, jobType)
}

// RegisterAlerts implements gateway.Gateway.
func (f *Fake) RegisterAlerts(ctx context.Context, plantID *string) (string, error) {
	f.record("RegisterAlerts")
	if f.AlertsFunc == nil {
		return "", nil
	}
	return f.AlertsFunc(ctx, plantID)
}

// ComputeHealthIndex implements gateway.Gateway.
func (f *Fake) ComputeHealthIndex(ctx context.Context, plantID string) (float64, error) {
	f.record("ComputeHealthIndex")
	if f.HealthFunc == nil {
		return 0, nil
	}
	return f.HealthFunc(ctx, plantID)
}

// FormatStatus implements gateway.Gateway.
func (f *Fake) FormatStatus(ctx context.Context, plantID string) (string, error) {
	f.record("FormatStatus")
	if f.StatusFunc == nil {
		return "", nil
	}
	return f.StatusFunc(ctx, plantID)
}

// PlantsFor returns n records owned by userID, or by rotating owners when userID is nil.
func PlantsFor(userID *string, n int) []model.PlantDashboardRecord {
	plants := make([]model.PlantDashboardRecord, 0, n)
	for i := 0; i < n; i++ {
		owner := "u" + strconv.Itoa(i%3+1)
		if userID != nil {
			owner = *userID
		}
		plants = append(plants, model.PlantDashboardRecord{
			PlantID:        owner + "-p" + strconv.Itoa(i+1),
			PlantName:      "Plant",
			UserID:         owner,
			HealthIndex:    80,
			StatusCategory: model.StatusGood,
		})
	}
	return plants
}

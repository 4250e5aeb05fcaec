package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metamorfose-backend/config"
	"metamorfose-backend/internal/model"
)

type mockTrigger struct {
	calls []string
	err   error
}

func (m *mockTrigger) RunJobAsync(_ context.Context, jobType string, source model.JobSource) (*model.BatchJob, error) {
	m.calls = append(m.calls, jobType+"/"+string(source))
	if m.err != nil {
		return nil, m.err
	}
	return &model.BatchJob{ID: "job-" + jobType}, nil
}

func TestNew_RegistersEntries(t *testing.T) {
	s, err := New(context.Background(), []config.ScheduledEntry{
		{Spec: "0 */6 * * *", JobType: "alertas"},
		{Spec: "@daily", JobType: "LIMPEZA"},
	}, &mockTrigger{})

	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestNew_RejectsBadEntries(t *testing.T) {
	_, err := New(context.Background(), []config.ScheduledEntry{{Spec: "0 * * * *", JobType: "bogus"}}, &mockTrigger{})
	assert.Error(t, err)

	_, err = New(context.Background(), []config.ScheduledEntry{{Spec: "every tuesday", JobType: "STATS"}}, &mockTrigger{})
	assert.Error(t, err)
}

func TestFire_QueuesAsScheduler(t *testing.T) {
	trigger := &mockTrigger{}
	s, err := New(context.Background(), nil, trigger)
	require.NoError(t, err)

	s.fire(model.JobStats)()
	assert.Equal(t, []string{"STATS/SCHEDULER"}, trigger.calls)

	trigger.err = errors.New("worker pool is stopped")
	assert.NotPanics(t, s.fire(model.JobAlerts))
}

func TestStartStop(t *testing.T) {
	s, err := New(context.Background(), []config.ScheduledEntry{{Spec: "@hourly", JobType: "STATS"}}, &mockTrigger{})
	require.NoError(t, err)

	s.Start()
	s.Stop()
}

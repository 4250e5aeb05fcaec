package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusCategory(t *testing.T) {
	assert.Equal(t, StatusGood, ParseStatusCategory("GOOD"))
	assert.Equal(t, StatusCritical, ParseStatusCategory(" critical "))
	assert.Equal(t, StatusError, ParseStatusCategory("THRIVING"))
	assert.Equal(t, StatusError, ParseStatusCategory(""))
}

func TestParseJobType(t *testing.T) {
	for _, raw := range []string{"completo", "Alertas", "LIMPEZA", "stats", " sTaTs "} {
		_, ok := ParseJobType(raw)
		assert.True(t, ok, raw)
	}
	for _, raw := range []string{"", "bogus", "STAT", "COMPLETO;DROP"} {
		_, ok := ParseJobType(raw)
		assert.False(t, ok, raw)
	}

	jt, _ := ParseJobType("stats")
	assert.Equal(t, JobStats, jt)
}

func TestPlantDashboardRecord_JSON(t *testing.T) {
	rec := PlantDashboardRecord{
		PlantID:        "p1",
		UserID:         "u1",
		HealthIndex:    87.5,
		StatusCategory: StatusGood,
		StartDate:      Date(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
		CreatedAt:      NewDateTime(time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)),
	}

	b, err := json.Marshal(rec)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "p1", out["plant_id"])
	assert.Equal(t, "2025-03-01", out["start_date"])
	assert.Equal(t, "2025-03-01 09:30:00", out["created_at"])
	assert.Nil(t, out["query_timestamp"])
	assert.Equal(t, "GOOD", out["status_category"])
	assert.Contains(t, out, "readings_last_24h")
}

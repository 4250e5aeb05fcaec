package gateway

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cast"

	"metamorfose-backend/internal/model"
)

// scanDashboardRows maps every cursor row. A single bad row fails the whole read.
func scanDashboardRows(rows *sqlx.Rows) ([]model.PlantDashboardRecord, error) {
	plants := make([]model.PlantDashboardRecord, 0)
	for rows.Next() {
		raw := make(map[string]any)
		if err := rows.MapScan(raw); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(plants)+1, err)
		}
		plant, err := decodeDashboardRow(newRow(raw))
		if err != nil {
			return nil, fmt.Errorf("decode row %d: %w", len(plants)+1, err)
		}
		plants = append(plants, plant)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return plants, nil
}

// row is a cursor row keyed by lower-cased column name. Oracle reports
// unquoted identifiers in upper case.
type row map[string]any

func newRow(raw map[string]any) row {
	r := make(row, len(raw))
	for k, v := range raw {
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		r[strings.ToLower(k)] = v
	}
	return r
}

func (r row) value(col string) (any, error) {
	v, ok := r[col]
	if !ok {
		return nil, fmt.Errorf("column %q missing from cursor", col)
	}
	return v, nil
}

func (r row) asString(col string) (string, error) {
	v, err := r.value(col)
	if err != nil || v == nil {
		return "", err
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("column %q: %w", col, err)
	}
	return s, nil
}

func (r row) asFloat(col string) (float64, error) {
	v, err := r.value(col)
	if err != nil || v == nil {
		return 0, err
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", col, err)
	}
	return f, nil
}

func (r row) asInt(col string) (int, error) {
	v, err := r.value(col)
	if err != nil || v == nil {
		return 0, err
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", col, err)
	}
	return i, nil
}

func (r row) asTime(col string) (time.Time, error) {
	v, err := r.value(col)
	if err != nil || v == nil {
		return time.Time{}, err
	}
	t, err := cast.ToTimeE(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("column %q: %w", col, err)
	}
	return t, nil
}

// decodeDashboardRow reads the columns PRC_API_DASHBOARD_PLANTAS exposes.
func decodeDashboardRow(r row) (model.PlantDashboardRecord, error) {
	var (
		p   model.PlantDashboardRecord
		err error
	)

	text := []struct {
		col  string
		dest *string
	}{
		{"plant_id", &p.PlantID},
		{"plant_name", &p.PlantName},
		{"species", &p.Species},
		{"pot_color", &p.PotColor},
		{"user_id", &p.UserID},
		{"user_name", &p.UserName},
		{"email", &p.Email},
		{"main_photo_url", &p.MainPhotoURL},
	}
	for _, f := range text {
		if *f.dest, err = r.asString(f.col); err != nil {
			return p, err
		}
	}

	ints := []struct {
		col  string
		dest *int
	}{
		{"days_monitored", &p.DaysMonitored},
		{"active_sensors", &p.ActiveSensors},
		{"readings_last_24h", &p.ReadingsLast24h},
	}
	for _, f := range ints {
		if *f.dest, err = r.asInt(f.col); err != nil {
			return p, err
		}
	}

	if p.HealthIndex, err = r.asFloat("health_index"); err != nil {
		return p, err
	}

	label, err := r.asString("status_category")
	if err != nil {
		return p, err
	}
	p.StatusCategory = model.ParseStatusCategory(label)

	startDate, err := r.asTime("start_date")
	if err != nil {
		return p, err
	}
	p.StartDate = model.Date(startDate)

	createdAt, err := r.asTime("created_at")
	if err != nil {
		return p, err
	}
	p.CreatedAt = model.NewDateTime(createdAt)

	queriedAt, err := r.asTime("query_timestamp")
	if err != nil {
		return p, err
	}
	p.QueryTimestamp = model.NewDateTime(queriedAt)

	return p, nil
}

package model

import "strings"

// StatusCategory is the health bucket the dashboard procedure assigns to a plant.
type StatusCategory string

const (
	StatusExcellent StatusCategory = "EXCELLENT"
	StatusGood      StatusCategory = "GOOD"
	StatusWarning   StatusCategory = "WARNING"
	StatusCaution   StatusCategory = "CAUTION"
	StatusCritical  StatusCategory = "CRITICAL"
	StatusError     StatusCategory = "ERROR"
)

// ParseStatusCategory decodes a gateway label. Anything outside the known set,
// including an empty label, becomes StatusError.
func ParseStatusCategory(label string) StatusCategory {
	switch c := StatusCategory(strings.ToUpper(strings.TrimSpace(label))); c {
	case StatusExcellent, StatusGood, StatusWarning, StatusCaution, StatusCritical, StatusError:
		return c
	default:
		return StatusError
	}
}

// PlantDashboardRecord is one row of the dashboard cursor.
type PlantDashboardRecord struct {
	PlantID   string `json:"plant_id"`
	PlantName string `json:"plant_name"`
	Species   string `json:"species"`
	PotColor  string `json:"pot_color"`
	StartDate Date   `json:"start_date"`

	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`

	HealthIndex     float64        `json:"health_index"`
	StatusCategory  StatusCategory `json:"status_category"`
	DaysMonitored   int            `json:"days_monitored"`
	ActiveSensors   int            `json:"active_sensors"`
	ReadingsLast24h int            `json:"readings_last_24h"`

	MainPhotoURL   string   `json:"main_photo_url"`
	CreatedAt      DateTime `json:"created_at"`
	QueryTimestamp DateTime `json:"query_timestamp"`
}

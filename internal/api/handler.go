package api

import (
	"metamorfose-backend/internal/service"
)

// Operation types of successful envelopes.
const (
	OpHealthCalculation   = "HEALTH_CALCULATION"
	OpStatusFormatting    = "STATUS_FORMATTING"
	OpCriticalAlerts      = "CRITICAL_ALERTS"
	OpPlantAlerts         = "PLANT_ALERTS"
	OpAutomaticProcessing = "AUTOMATIC_PROCESSING"
	OpAsyncProcessing     = "ASYNC_PROCESSING"
	OpJobList             = "JOB_LIST"
	OpJobStatus           = "JOB_STATUS"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	svc *service.Service
}

// NewHandler creates a new API handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

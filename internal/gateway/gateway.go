// Package gateway adapts the plant-monitoring PL/SQL routines to Go calls.
//
// The routines are owned by the database schema; their names and positional
// parameters must not change.
package gateway

import (
	"context"

	"metamorfose-backend/internal/model"
)

const (
	callDashboard  = "BEGIN PRC_API_DASHBOARD_PLANTAS(:1, :2); END;"
	callBatchJob   = "BEGIN PRC_BACKEND_PROCESSAMENTO_AUTO(:1, :2); END;"
	callAlerts     = "BEGIN PRC_REGISTRAR_ALERTAS_CRITICOS(:1, :2); END;"
	selectHealth   = "SELECT FN_CALCULAR_INDICE_SAUDE_PLANTA(:1) FROM DUAL"
	selectStatus   = "SELECT FN_FORMATAR_STATUS_PLANTA(:1) FROM DUAL"
	selectPingDual = "SELECT 1 FROM DUAL"
)

// alertsSummarySize is the PL/SQL VARCHAR2 limit; the OUT buffer must be
// sized up front or Oracle raises ORA-06502 when the summary is written.
const alertsSummarySize = 32767

// Gateway is the set of stored routines the service calls.
// A nil id means "all users" or "all plants".
type Gateway interface {
	FetchDashboard(ctx context.Context, userID *string) ([]model.PlantDashboardRecord, error)
	RunBatchJob(ctx context.Context, jobType model.JobType) (string, error)
	RegisterAlerts(ctx context.Context, plantID *string) (string, error)
	ComputeHealthIndex(ctx context.Context, plantID string) (float64, error)
	FormatStatus(ctx context.Context, plantID string) (string, error)
}

package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	go_ora "github.com/sijms/go-ora/v2"

	"metamorfose-backend/internal/apperr"
	"metamorfose-backend/internal/model"
)

// ErrNullResult is returned when a scalar function yields NULL.
var ErrNullResult = errors.New("function returned NULL")

// OracleGateway calls the routines through go-ora. Every method takes its own
// connection from the pool and gives it back before returning.
type OracleGateway struct {
	db *sqlx.DB
}

// NewOracleGateway creates a gateway on top of an open pool.
func NewOracleGateway(db *sqlx.DB) *OracleGateway {
	return &OracleGateway{db: db}
}

// Ping checks that the schema is reachable.
func (g *OracleGateway) Ping(ctx context.Context) error {
	var one int
	if err := g.db.GetContext(ctx, &one, selectPingDual); err != nil {
		return apperr.Gateway("oracle is unreachable", err)
	}
	return nil
}

// FetchDashboard runs PRC_API_DASHBOARD_PLANTAS and drains its cursor.
func (g *OracleGateway) FetchDashboard(ctx context.Context, userID *string) ([]model.PlantDashboardRecord, error) {
	log.Printf("calling PRC_API_DASHBOARD_PLANTAS for user %s", describeID(userID))

	conn, err := g.db.Connx(ctx)
	if err != nil {
		return nil, apperr.Gateway("failed to load dashboard data", err)
	}
	defer conn.Close()

	var cursor go_ora.RefCursor
	if _, err := conn.ExecContext(ctx, callDashboard, nullString(userID), sql.Out{Dest: &cursor}); err != nil {
		log.Printf("PRC_API_DASHBOARD_PLANTAS failed: %v", err)
		return nil, apperr.Gateway("failed to load dashboard data", err)
	}

	raw, err := go_ora.WrapRefCursor(ctx, conn, &cursor)
	if err != nil {
		log.Printf("PRC_API_DASHBOARD_PLANTAS cursor open failed: %v", err)
		return nil, apperr.Gateway("failed to load dashboard data", err)
	}
	rows := &sqlx.Rows{Rows: raw, Mapper: g.db.Mapper}
	defer rows.Close()

	plants, err := scanDashboardRows(rows)
	if err != nil {
		log.Printf("PRC_API_DASHBOARD_PLANTAS cursor read failed: %v", err)
		return nil, apperr.Gateway("failed to load dashboard data", err)
	}

	log.Printf("PRC_API_DASHBOARD_PLANTAS returned %d plants", len(plants))
	return plants, nil
}

// RunBatchJob runs PRC_BACKEND_PROCESSAMENTO_AUTO and returns its CLOB report.
func (g *OracleGateway) RunBatchJob(ctx context.Context, jobType model.JobType) (string, error) {
	log.Printf("calling PRC_BACKEND_PROCESSAMENTO_AUTO with type %s", jobType)

	conn, err := g.db.Connx(ctx)
	if err != nil {
		return "", apperr.Gateway("automatic processing failed", err)
	}
	defer conn.Close()

	var report go_ora.Clob
	if _, err := conn.ExecContext(ctx, callBatchJob, string(jobType), sql.Out{Dest: &report}); err != nil {
		log.Printf("PRC_BACKEND_PROCESSAMENTO_AUTO failed: %v", err)
		return "", apperr.Gateway("automatic processing failed", err)
	}

	return report.String, nil
}

// RegisterAlerts runs PRC_REGISTRAR_ALERTAS_CRITICOS and returns its summary.
func (g *OracleGateway) RegisterAlerts(ctx context.Context, plantID *string) (string, error) {
	log.Printf("calling PRC_REGISTRAR_ALERTAS_CRITICOS for plant %s", describeID(plantID))

	conn, err := g.db.Connx(ctx)
	if err != nil {
		return "", apperr.Gateway("failed to register alerts", err)
	}
	defer conn.Close()

	var summary sql.NullString
	if _, err := conn.ExecContext(ctx, callAlerts, nullString(plantID), go_ora.Out{Dest: &summary, Size: alertsSummarySize}); err != nil {
		log.Printf("PRC_REGISTRAR_ALERTAS_CRITICOS failed: %v", err)
		return "", apperr.Gateway("failed to register alerts", err)
	}

	return summary.String, nil
}

// ComputeHealthIndex evaluates FN_CALCULAR_INDICE_SAUDE_PLANTA.
func (g *OracleGateway) ComputeHealthIndex(ctx context.Context, plantID string) (float64, error) {
	var index sql.NullFloat64
	if err := g.db.GetContext(ctx, &index, selectHealth, plantID); err != nil {
		log.Printf("FN_CALCULAR_INDICE_SAUDE_PLANTA(%s) failed: %v", plantID, err)
		return 0, apperr.Gateway("failed to compute health index", err)
	}
	if !index.Valid {
		return 0, apperr.Gateway("failed to compute health index", fmt.Errorf("plant %s: %w", plantID, ErrNullResult))
	}
	return index.Float64, nil
}

// FormatStatus evaluates FN_FORMATAR_STATUS_PLANTA.
func (g *OracleGateway) FormatStatus(ctx context.Context, plantID string) (string, error) {
	var status sql.NullString
	if err := g.db.GetContext(ctx, &status, selectStatus, plantID); err != nil {
		log.Printf("FN_FORMATAR_STATUS_PLANTA(%s) failed: %v", plantID, err)
		return "", apperr.Gateway("failed to format plant status", err)
	}
	if !status.Valid {
		return "", apperr.Gateway("failed to format plant status", fmt.Errorf("plant %s: %w", plantID, ErrNullResult))
	}
	return status.String, nil
}

func nullString(id *string) sql.NullString {
	if id == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *id, Valid: true}
}

func describeID(id *string) string {
	if id == nil {
		return "<all>"
	}
	return *id
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"metamorfose-backend/internal/model"
)

// RegisterAllAlerts handles POST /monitoring/alerts.
// @Summary Register critical alerts
// @Tags monitoring
// @Produce json
// @Success 200 {object} model.OperationResult
// @Failure 500 {object} model.OperationResult
// @Router /monitoring/alerts [post]
func (h *Handler) RegisterAllAlerts(c *gin.Context) {
	summary, err := h.svc.RegisterAlerts(c.Request.Context(), nil)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccess(OpCriticalAlerts, "alerts processed", summary))
}

// RegisterPlantAlerts handles POST /monitoring/alerts/{plantId}.
// @Summary Register a plant's critical alerts
// @Tags monitoring
// @Produce json
// @Param plantId path string true "Plant ID"
// @Success 200 {object} model.OperationResult
// @Failure 400 {object} model.OperationResult
// @Failure 500 {object} model.OperationResult
// @Router /monitoring/alerts/{plantId} [post]
func (h *Handler) RegisterPlantAlerts(c *gin.Context) {
	plantID := c.Param("plantId")
	summary, err := h.svc.RegisterAlerts(c.Request.Context(), &plantID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccess(OpPlantAlerts, "plant alerts processed", summary))
}

// RunProcessing handles POST /monitoring/process/{type}. It blocks until the
// batch routine returns its report.
// @Summary Run batch processing
// @Tags monitoring
// @Produce json
// @Param type path string true "Processing type" Enums(COMPLETO, ALERTAS, LIMPEZA, STATS)
// @Success 200 {object} model.OperationResult
// @Failure 400 {object} model.OperationResult
// @Failure 500 {object} model.OperationResult
// @Router /monitoring/process/{type} [post]
func (h *Handler) RunProcessing(c *gin.Context) {
	report, err := h.svc.RunJob(c.Request.Context(), c.Param("type"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccess(OpAutomaticProcessing, "processing completed", report))
}

// QueueProcessing handles POST /monitoring/process/{type}/async.
// @Summary Queue batch processing
// @Tags monitoring
// @Produce json
// @Param type path string true "Processing type" Enums(COMPLETO, ALERTAS, LIMPEZA, STATS)
// @Success 202 {object} model.OperationResult
// @Failure 400 {object} model.OperationResult
// @Failure 500 {object} model.OperationResult
// @Router /monitoring/process/{type}/async [post]
func (h *Handler) QueueProcessing(c *gin.Context) {
	job, err := h.svc.RunJobAsync(c.Request.Context(), c.Param("type"), model.SourceAPI)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, model.NewSuccess(OpAsyncProcessing, "processing started in background", job))
}

package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"metamorfose-backend/internal/apperr"
	"metamorfose-backend/internal/model"
)

// ListJobs handles GET /monitoring/jobs?limit=n.
// @Summary List batch jobs
// @Tags monitoring
// @Produce json
// @Param limit query int false "At most this many jobs"
// @Success 200 {object} model.OperationResult
// @Failure 400 {object} model.OperationResult
// @Router /monitoring/jobs [get]
func (h *Handler) ListJobs(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			_ = c.Error(apperr.Validation("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	jobs, err := h.svc.ListJobs(c.Request.Context(), limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccess(OpJobList, "jobs retrieved", jobs))
}

// GetJob handles GET /monitoring/jobs/{jobId}.
// @Summary Get a batch job
// @Tags monitoring
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {object} model.OperationResult
// @Failure 404 {object} model.OperationResult
// @Router /monitoring/jobs/{jobId} [get]
func (h *Handler) GetJob(c *gin.Context) {
	job, err := h.svc.GetJob(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccess(OpJobStatus, "job retrieved", job))
}

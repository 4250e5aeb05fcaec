package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"metamorfose-backend/internal/model"
)

// GetAllPlants handles GET /dashboard/plants.
// @Summary List all plants
// @Tags dashboard
// @Produce json
// @Success 200 {array} model.PlantDashboardRecord
// @Failure 500 {object} model.OperationResult
// @Router /dashboard/plants [get]
func (h *Handler) GetAllPlants(c *gin.Context) {
	plants, err := h.svc.GetAllDashboard(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, plants)
}

// GetUserPlants handles GET /dashboard/plants/user/{userId}.
// @Summary List a user's plants
// @Tags dashboard
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} model.PlantDashboardRecord
// @Failure 400 {object} model.OperationResult
// @Failure 500 {object} model.OperationResult
// @Router /dashboard/plants/user/{userId} [get]
func (h *Handler) GetUserPlants(c *gin.Context) {
	userID := c.Param("userId")
	plants, err := h.svc.GetDashboard(c.Request.Context(), &userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, plants)
}

// GetPlantHealth handles GET /dashboard/plants/{plantId}/health.
// @Summary Compute a plant's health index
// @Tags dashboard
// @Produce json
// @Param plantId path string true "Plant ID"
// @Success 200 {object} model.OperationResult
// @Failure 400 {object} model.OperationResult
// @Failure 500 {object} model.OperationResult
// @Router /dashboard/plants/{plantId}/health [get]
func (h *Handler) GetPlantHealth(c *gin.Context) {
	index, err := h.svc.GetHealthIndex(c.Request.Context(), c.Param("plantId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccess(OpHealthCalculation, "health index calculated", index))
}

// GetPlantStatus handles GET /dashboard/plants/{plantId}/status.
// @Summary Format a plant's status
// @Tags dashboard
// @Produce json
// @Param plantId path string true "Plant ID"
// @Success 200 {object} model.OperationResult
// @Failure 400 {object} model.OperationResult
// @Failure 500 {object} model.OperationResult
// @Router /dashboard/plants/{plantId}/status [get]
func (h *Handler) GetPlantStatus(c *gin.Context) {
	status, err := h.svc.GetFormattedStatus(c.Request.Context(), c.Param("plantId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccess(OpStatusFormatting, "status retrieved", status))
}

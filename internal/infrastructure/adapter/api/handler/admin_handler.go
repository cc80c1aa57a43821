package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dropme/rvm-backend/internal/domain/entity"
	domainerr "github.com/dropme/rvm-backend/internal/domain/error"
	coreport "github.com/dropme/rvm-backend/internal/domain/port/core"
	"github.com/dropme/rvm-backend/internal/domain/port/usecase"
	"github.com/dropme/rvm-backend/internal/infrastructure/adapter/api/dto"
)

// AdminHandler serves the staff-only platform statistics
type AdminHandler struct {
	reportingService usecase.ReportingUseCase
	logger           coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(reportingService usecase.ReportingUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		reportingService: reportingService,
		logger:           logger,
	}
}

// GetSystemStats handles the GET /api/admin/stats endpoint
func (h *AdminHandler) GetSystemStats(c *gin.Context) {
	stats, err := h.reportingService.GetSystemStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	topMachines := make([]dto.MachineTotalsPayload, len(stats.TopMachines))
	for i, m := range stats.TopMachines {
		topMachines[i] = dto.MachineTotalsPayload{
			MachineID:     m.MachineRef,
			Location:      m.Location,
			TotalWeightKg: entity.FormatWeightKg(m.TotalWeightGrams),
			DepositCount:  m.DepositCount,
		}
	}

	c.JSON(http.StatusOK, dto.SystemStatsResponse{
		TotalWeightKg: entity.FormatWeightKg(stats.Totals.TotalWeightGrams),
		TotalPoints:   entity.FormatPoints(stats.Totals.TotalPoints),
		DepositCount:  stats.Totals.DepositCount,
		TopMaterials:  materialTotalsPayload(stats.TopMaterials),
		TopMachines:   topMachines,
	})
}

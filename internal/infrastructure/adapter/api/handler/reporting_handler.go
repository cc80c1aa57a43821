package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dropme/rvm-backend/internal/domain/entity"
	domainerr "github.com/dropme/rvm-backend/internal/domain/error"
	coreport "github.com/dropme/rvm-backend/internal/domain/port/core"
	"github.com/dropme/rvm-backend/internal/domain/port/persistence"
	"github.com/dropme/rvm-backend/internal/domain/port/usecase"
	"github.com/dropme/rvm-backend/internal/infrastructure/adapter/api/dto"
	"github.com/dropme/rvm-backend/internal/infrastructure/adapter/api/middleware"
)

// ReportingHandler serves a user's deposit history and summary
type ReportingHandler struct {
	reportingService usecase.ReportingUseCase
	logger           coreport.Logger
}

// NewReportingHandler creates a new reporting handler instance
func NewReportingHandler(reportingService usecase.ReportingUseCase, logger coreport.Logger) *ReportingHandler {
	return &ReportingHandler{
		reportingService: reportingService,
		logger:           logger,
	}
}

func historyItems(deposits []*entity.Deposit) []dto.HistoryItem {
	items := make([]dto.HistoryItem, len(deposits))
	for i, d := range deposits {
		items[i] = dto.HistoryItem{
			Reference: d.Reference,
			Material:  d.MaterialName,
			MachineID: d.MachineRef,
			WeightKg:  d.WeightKg(),
			Points:    d.Points(),
			Notes:     d.Notes,
			CreatedAt: d.CreatedAt.Format(time.RFC3339),
		}
	}
	return items
}

func materialTotalsPayload(totals []persistence.MaterialTotals) []dto.MaterialTotalsPayload {
	payload := make([]dto.MaterialTotalsPayload, len(totals))
	for i, t := range totals {
		payload[i] = dto.MaterialTotalsPayload{
			Material:      t.MaterialName,
			TotalWeightKg: entity.FormatWeightKg(t.TotalWeightGrams),
			TotalPoints:   entity.FormatPoints(t.TotalPoints),
			DepositCount:  t.DepositCount,
		}
	}
	return payload
}

// GetHistory handles the GET /api/deposits/history endpoint
func (h *ReportingHandler) GetHistory(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "0"))

	result, err := h.reportingService.ListDeposits(c.Request.Context(), userID, usecase.HistoryRequest{
		MaterialName: c.Query("material"),
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.HistoryResponse{
		Deposits:   historyItems(result.Deposits),
		TotalCount: result.TotalCount,
		Page:       result.Page,
		TotalPages: result.TotalPages,
	})
}

// GetSummary handles the GET /api/user/summary endpoint
func (h *ReportingHandler) GetSummary(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	summary, err := h.reportingService.GetUserSummary(c.Request.Context(), userID)
	if err != nil {
		if domainerr.IsMissingStatisticsError(err) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrNotFound),
				Message: "No statistics found for this user",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	stats := summary.Statistics
	c.JSON(http.StatusOK, dto.SummaryResponse{
		UserID:        stats.UserID,
		TotalWeightKg: stats.TotalWeightKg(),
		TotalPoints:   stats.TotalPointsValue(),
		DepositCount:  stats.DepositCount,
		Breakdown:     materialTotalsPayload(summary.Breakdown),
		Recent:        historyItems(summary.Recent),
	})
}

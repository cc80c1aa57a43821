package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainerr "github.com/dropme/rvm-backend/internal/domain/error"
	coreport "github.com/dropme/rvm-backend/internal/domain/port/core"
	"github.com/dropme/rvm-backend/internal/domain/port/usecase"
	depositUseCase "github.com/dropme/rvm-backend/internal/domain/usecase/deposit"
	"github.com/dropme/rvm-backend/internal/infrastructure/adapter/api/dto"
	"github.com/dropme/rvm-backend/internal/infrastructure/adapter/api/middleware"
)

// DepositHandler handles deposit-related HTTP requests
type DepositHandler struct {
	depositService *depositUseCase.Service
	logger         coreport.Logger
}

// NewDepositHandler creates a new deposit handler instance
func NewDepositHandler(depositService *depositUseCase.Service, logger coreport.Logger) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
		logger:         logger,
	}
}

// RecordDeposit handles the POST /api/deposits endpoint
func (h *DepositHandler) RecordDeposit(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid deposit request format", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.depositService.RecordDeposit(c.Request.Context(), userID, usecase.DepositRequest{
		WeightKg:     req.WeightKg,
		MaterialName: req.Material,
		MachineID:    req.MachineID,
		Notes:        req.Notes,
	})
	if err != nil {
		status := depositUseCase.StatusCode(err)
		message := err.Error()
		if status == http.StatusInternalServerError {
			message = "Internal server error"
		}
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	deposit := result.Deposit
	stats := result.Statistics
	c.JSON(http.StatusCreated, dto.DepositResponse{
		Reference:    deposit.Reference,
		UserID:       deposit.UserID,
		Material:     deposit.MaterialName,
		MachineID:    deposit.MachineRef,
		WeightKg:     deposit.WeightKg(),
		PointsEarned: deposit.Points(),
		CreatedAt:    deposit.CreatedAt.Format(time.RFC3339),
		Statistics: dto.StatisticsPayload{
			TotalWeightKg: stats.TotalWeightKg(),
			TotalPoints:   stats.TotalPointsValue(),
			DepositCount:  stats.DepositCount,
		},
	})
}

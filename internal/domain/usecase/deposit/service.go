package deposit

import (
	"context"
	"errors"
	"net/http"
	"time"

	errs "github.com/dropme/rvm-backend/internal/domain/error"
	coreport "github.com/dropme/rvm-backend/internal/domain/port/core"
	"github.com/dropme/rvm-backend/internal/domain/port/persistence"
	"github.com/dropme/rvm-backend/internal/domain/port/usecase"
)

// Options tunes the deposit pipeline
type Options struct {
	// MaxWeightKg is the per-deposit weight ceiling; zero means the default
	MaxWeightKg int
	// DuplicateWindow for the integrity guard; zero disables the check
	DuplicateWindow time.Duration
	// DailyDepositLimit for the integrity guard; zero disables the check
	DailyDepositLimit int
}

// Service is the deposit use case implementation handed to the API layer
type Service struct {
	coordinator *Coordinator
	logger      coreport.Logger
}

// NewDepositService wires the validator, guard and coordinator together
func NewDepositService(
	uow persistence.UnitOfWork,
	materialRepo persistence.MaterialRepository,
	machineRepo persistence.MachineRepository,
	depositRepo persistence.DepositRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts Options,
) *Service {
	validator := NewDepositValidator(opts.MaxWeightKg)

	var guard *IntegrityGuard
	if opts.DuplicateWindow > 0 || opts.DailyDepositLimit > 0 {
		guard = NewIntegrityGuard(depositRepo, timeProvider, logger, GuardConfig{
			DuplicateWindow:   opts.DuplicateWindow,
			DailyDepositLimit: opts.DailyDepositLimit,
		})
	}

	coordinator := NewCoordinator(uow, materialRepo, machineRepo, validator, guard, timeProvider, logger)

	return &Service{
		coordinator: coordinator,
		logger:      logger,
	}
}

// RecordDeposit implements usecase.DepositUseCase
func (s *Service) RecordDeposit(
	ctx context.Context,
	userID uint64,
	req usecase.DepositRequest,
) (*usecase.DepositResult, error) {
	result, err := s.coordinator.RecordDeposit(ctx, userID, req)
	if err != nil {
		fields := map[string]any{
			"user_id":    userID,
			"material":   req.MaterialName,
			"machine_id": req.MachineID,
			"error":      err.Error(),
		}
		if logged, ok := err.(interface{ LogFields() map[string]any }); ok {
			fields = logged.LogFields()
		}
		s.logger.Error("Deposit submission failed", fields)
		return nil, err
	}
	return result, nil
}

// StatusCode maps a deposit error to the HTTP status the API layer should return
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errs.IsInvalidWeightError(err),
		errs.IsMachineUnavailableError(err),
		errs.IsDuplicateDepositError(err):
		return http.StatusBadRequest
	case errs.IsUnknownReferenceError(err):
		return http.StatusBadRequest
	case errs.IsTransactionConflictError(err):
		return http.StatusConflict
	case errs.IsMissingStatisticsError(err):
		// internal invariant violation, no detail for the caller
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrDepositLimitExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, errs.ErrInvalidUserID), errors.Is(err, errs.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

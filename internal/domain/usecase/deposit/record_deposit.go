package deposit

import (
	"context"
	"fmt"

	"github.com/dropme/rvm-backend/internal/domain/entity"
	errs "github.com/dropme/rvm-backend/internal/domain/error"
	coreport "github.com/dropme/rvm-backend/internal/domain/port/core"
	"github.com/dropme/rvm-backend/internal/domain/port/persistence"
	"github.com/dropme/rvm-backend/internal/domain/port/usecase"
)

// Coordinator runs the deposit transaction: validate, resolve reference
// data, compute the reward, then persist the deposit and the statistics
// increment inside one atomic commit
type Coordinator struct {
	uow          persistence.UnitOfWork
	materialRepo persistence.MaterialRepository
	machineRepo  persistence.MachineRepository
	validator    *DepositValidator
	guard        *IntegrityGuard
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCoordinator creates a deposit coordinator. The guard may be nil when
// submission limits are disabled.
func NewCoordinator(
	uow persistence.UnitOfWork,
	materialRepo persistence.MaterialRepository,
	machineRepo persistence.MachineRepository,
	validator *DepositValidator,
	guard *IntegrityGuard,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Coordinator {
	return &Coordinator{
		uow:          uow,
		materialRepo: materialRepo,
		machineRepo:  machineRepo,
		validator:    validator,
		guard:        guard,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// RecordDeposit processes one submission. Steps run in order and each is a
// precondition for the next; any failure before the commit leaves zero
// durable effects, and a failure during the commit rolls back fully.
func (c *Coordinator) RecordDeposit(
	ctx context.Context,
	userID uint64,
	req usecase.DepositRequest,
) (*usecase.DepositResult, error) {
	// Step 1: validate the raw submission before any lookup
	weightGrams, err := c.validator.ValidateSubmission(userID, req)
	if err != nil {
		return nil, err
	}

	// Step 2: resolve the material
	material, err := c.materialRepo.GetByName(ctx, req.MaterialName)
	if err != nil {
		return nil, errs.NewDepositError(userID, req.MaterialName, req.MachineID, req.WeightKg,
			"material lookup failed", err)
	}

	// Step 3: resolve the machine and check availability
	machine, err := c.machineRepo.GetByMachineID(ctx, req.MachineID)
	if err != nil {
		return nil, errs.NewDepositError(userID, req.MaterialName, req.MachineID, req.WeightKg,
			"machine lookup failed", err)
	}
	if !machine.IsActive() {
		return nil, errs.NewMachineUnavailableError(machine.MachineID, string(machine.Status))
	}

	// Screen for duplicate taps and the daily cap
	if c.guard != nil {
		if err := c.guard.Check(ctx, userID, material.ID, machine.ID, weightGrams); err != nil {
			return nil, err
		}
	}

	// Step 4: compute the reward and build the record
	dep, err := entity.NewDeposit(userID, material, machine, weightGrams, req.Notes, c.timeProvider)
	if err != nil {
		return nil, err
	}

	// Step 5: atomic commit of the deposit row and the statistics increment
	result, err := c.commit(ctx, dep)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Deposit recorded", map[string]any{
		"reference":  dep.Reference,
		"user_id":    userID,
		"material":   dep.MaterialName,
		"machine_id": dep.MachineRef,
		"weight_kg":  dep.WeightKg(),
		"points":     dep.Points(),
	})

	return result, nil
}

// commit writes the deposit and increments the caller's totals inside one
// database transaction. An external reader observes both effects or neither.
func (c *Coordinator) commit(ctx context.Context, dep *entity.Deposit) (*usecase.DepositResult, error) {
	txCtx, err := c.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin deposit transaction: %w", err)
	}

	depositRepo := c.uow.GetDepositRepository(txCtx)
	statsRepo := c.uow.GetStatisticsRepository(txCtx)

	if err := depositRepo.Create(txCtx, dep); err != nil {
		c.rollback(txCtx, dep.Reference)
		return nil, err
	}

	if err := statsRepo.Increment(txCtx, dep.UserID, dep.WeightGrams, dep.PointsEarned); err != nil {
		c.rollback(txCtx, dep.Reference)
		if errs.IsMissingStatisticsError(err) {
			c.logger.Error("Statistics row missing for registered user", map[string]any{
				"user_id":   dep.UserID,
				"reference": dep.Reference,
			})
		}
		return nil, err
	}

	// Read the updated totals inside the transaction so the response
	// reflects exactly this commit
	stats, err := statsRepo.GetByUserID(txCtx, dep.UserID)
	if err != nil {
		c.rollback(txCtx, dep.Reference)
		return nil, err
	}

	if err := c.uow.Commit(txCtx); err != nil {
		c.rollback(txCtx, dep.Reference)
		return nil, fmt.Errorf("%w: %s", errs.ErrTransactionConflict, err.Error())
	}

	return &usecase.DepositResult{
		Deposit:    dep,
		Statistics: stats,
	}, nil
}

// rollback is best effort; a rollback failure is logged but the original
// error still reaches the caller
func (c *Coordinator) rollback(txCtx context.Context, reference string) {
	if err := c.uow.Rollback(txCtx); err != nil {
		c.logger.Error("Failed to roll back deposit transaction", map[string]any{
			"reference": reference,
			"error":     err.Error(),
		})
	}
}

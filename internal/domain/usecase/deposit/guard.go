package deposit

import (
	"context"
	"fmt"
	"time"

	errs "github.com/dropme/rvm-backend/internal/domain/error"
	coreport "github.com/dropme/rvm-backend/internal/domain/port/core"
	"github.com/dropme/rvm-backend/internal/domain/port/persistence"
)

// GuardConfig tunes the submission limits. A zero window or limit
// disables the corresponding check.
type GuardConfig struct {
	// DuplicateWindow rejects a second identical submission (same user,
	// material, machine and weight) arriving within this window
	DuplicateWindow time.Duration
	// DailyDepositLimit caps how many deposits one user may make per UTC day
	DailyDepositLimit int
}

// IntegrityGuard screens submissions for duplicate rapid taps and
// daily-cap abuse before the transaction is opened. Both checks run as
// count queries over the indexed deposits table.
type IntegrityGuard struct {
	depositRepo  persistence.DepositRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       GuardConfig
}

// NewIntegrityGuard creates a guard over the given deposit repository
func NewIntegrityGuard(
	depositRepo persistence.DepositRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config GuardConfig,
) *IntegrityGuard {
	return &IntegrityGuard{
		depositRepo:  depositRepo,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// Check verifies the submission against the configured limits
func (g *IntegrityGuard) Check(ctx context.Context, userID, materialID, machineID uint64, weightGrams int64) error {
	now := g.timeProvider.Now()

	if g.config.DuplicateWindow > 0 {
		since := now.Add(-g.config.DuplicateWindow)
		count, err := g.depositRepo.CountMatchingSince(ctx, userID, materialID, machineID, weightGrams, since)
		if err != nil {
			return err
		}
		if count > 0 {
			g.logger.Warn("Duplicate deposit rejected", map[string]any{
				"user_id":    userID,
				"machine_id": machineID,
				"window_s":   g.config.DuplicateWindow.Seconds(),
			})
			return fmt.Errorf("%w: identical submission within %s",
				errs.ErrDuplicateDeposit, g.config.DuplicateWindow)
		}
	}

	if g.config.DailyDepositLimit > 0 {
		day := now.UTC()
		startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		count, err := g.depositRepo.CountByUserSince(ctx, userID, startOfDay)
		if err != nil {
			return err
		}
		if count >= int64(g.config.DailyDepositLimit) {
			g.logger.Warn("Daily deposit limit reached", map[string]any{
				"user_id": userID,
				"limit":   g.config.DailyDepositLimit,
			})
			return fmt.Errorf("%w: at most %d deposits per day",
				errs.ErrDepositLimitExceeded, g.config.DailyDepositLimit)
		}
	}

	return nil
}

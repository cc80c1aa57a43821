package deposit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "github.com/dropme/rvm-backend/internal/domain/error"
	coremocks "github.com/dropme/rvm-backend/mocks/port/core"
	persistencemocks "github.com/dropme/rvm-backend/mocks/port/persistence"
)

func newGuardFixture(config GuardConfig) (*IntegrityGuard, *persistencemocks.MockDepositRepository) {
	depositRepo := new(persistencemocks.MockDepositRepository)
	timeProvider := new(coremocks.MockTimeProvider)
	logger := new(coremocks.MockLogger)

	timeProvider.On("Now").Return(fixedTime).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()

	return NewIntegrityGuard(depositRepo, timeProvider, logger, config), depositRepo
}

func TestGuardCheck_Passes(t *testing.T) {
	ctx := context.Background()
	guard, depositRepo := newGuardFixture(GuardConfig{
		DuplicateWindow:   time.Minute,
		DailyDepositLimit: 50,
	})

	depositRepo.On("CountMatchingSince", ctx, uint64(42), uint64(1), uint64(2), int64(2500),
		fixedTime.Add(-time.Minute)).Return(int64(0), nil)
	depositRepo.On("CountByUserSince", ctx, uint64(42),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).Return(int64(49), nil)

	err := guard.Check(ctx, 42, 1, 2, 2500)

	assert.NoError(t, err)
	depositRepo.AssertExpectations(t)
}

func TestGuardCheck_DuplicateWithinWindow(t *testing.T) {
	ctx := context.Background()
	guard, depositRepo := newGuardFixture(GuardConfig{
		DuplicateWindow:   time.Minute,
		DailyDepositLimit: 50,
	})

	depositRepo.On("CountMatchingSince", ctx, uint64(42), uint64(1), uint64(2), int64(2500),
		fixedTime.Add(-time.Minute)).Return(int64(1), nil)

	err := guard.Check(ctx, 42, 1, 2, 2500)

	assert.ErrorIs(t, err, errs.ErrDuplicateDeposit)
	depositRepo.AssertNotCalled(t, "CountByUserSince", mock.Anything, mock.Anything, mock.Anything)
}

func TestGuardCheck_DailyLimitReached(t *testing.T) {
	ctx := context.Background()
	guard, depositRepo := newGuardFixture(GuardConfig{
		DailyDepositLimit: 50,
	})

	depositRepo.On("CountByUserSince", ctx, uint64(42),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).Return(int64(50), nil)

	err := guard.Check(ctx, 42, 1, 2, 2500)

	assert.ErrorIs(t, err, errs.ErrDepositLimitExceeded)
	depositRepo.AssertNotCalled(t, "CountMatchingSince",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGuardCheck_DisabledChecksSkipQueries(t *testing.T) {
	ctx := context.Background()
	guard, depositRepo := newGuardFixture(GuardConfig{})

	err := guard.Check(ctx, 42, 1, 2, 2500)

	assert.NoError(t, err)
	depositRepo.AssertNotCalled(t, "CountMatchingSince",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	depositRepo.AssertNotCalled(t, "CountByUserSince", mock.Anything, mock.Anything, mock.Anything)
}

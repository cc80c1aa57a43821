package deposit

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dropme/rvm-backend/internal/domain/entity"
	errs "github.com/dropme/rvm-backend/internal/domain/error"
	coremocks "github.com/dropme/rvm-backend/mocks/port/core"
	persistencemocks "github.com/dropme/rvm-backend/mocks/port/persistence"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"no error", nil, http.StatusOK},
		{"invalid weight", errs.ErrInvalidWeight, http.StatusBadRequest},
		{"wrapped invalid weight", fmt.Errorf("%w: too heavy", errs.ErrInvalidWeight), http.StatusBadRequest},
		{"unknown material", errs.ErrUnknownMaterial, http.StatusBadRequest},
		{"unknown machine", errs.ErrUnknownMachine, http.StatusBadRequest},
		{"machine unavailable", errs.NewMachineUnavailableError("RVM-001", "maintenance"), http.StatusBadRequest},
		{"duplicate deposit", errs.ErrDuplicateDeposit, http.StatusBadRequest},
		{"invalid user", errs.ErrInvalidUserID, http.StatusBadRequest},
		{"invalid request", errs.ErrInvalidRequest, http.StatusBadRequest},
		{"transaction conflict", errs.ErrTransactionConflict, http.StatusConflict},
		{"daily limit", errs.ErrDepositLimitExceeded, http.StatusTooManyRequests},
		{"missing statistics", errs.ErrMissingUserStatistics, http.StatusInternalServerError},
		{"unexpected", fmt.Errorf("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusCode(tc.err))
		})
	}
}

func TestDepositService_LogsFailures(t *testing.T) {
	ctx := context.Background()

	uow := new(persistencemocks.MockUnitOfWork)
	materialRepo := new(persistencemocks.MockMaterialRepository)
	machineRepo := new(persistencemocks.MockMachineRepository)
	depositRepo := new(persistencemocks.MockDepositRepository)
	timeProvider := new(coremocks.MockTimeProvider)
	logger := new(coremocks.MockLogger)

	timeProvider.On("Now").Return(fixedTime).Maybe()
	materialRepo.On("GetByName", ctx, "Plastic").Return(nil, errs.ErrUnknownMaterial)
	logger.On("Error", "Deposit submission failed", mock.Anything).Once()

	service := NewDepositService(uow, materialRepo, machineRepo, depositRepo, timeProvider, logger, Options{})

	_, err := service.RecordDeposit(ctx, 42, plasticRequest())

	assert.ErrorIs(t, err, errs.ErrUnknownMaterial)
	logger.AssertExpectations(t)
}

func TestDepositService_Success(t *testing.T) {
	ctx := context.Background()

	uow := new(persistencemocks.MockUnitOfWork)
	materialRepo := new(persistencemocks.MockMaterialRepository)
	machineRepo := new(persistencemocks.MockMachineRepository)
	depositRepo := new(persistencemocks.MockDepositRepository)
	statsRepo := new(persistencemocks.MockStatisticsRepository)
	timeProvider := new(coremocks.MockTimeProvider)
	logger := new(coremocks.MockLogger)

	timeProvider.On("Now").Return(fixedTime).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()

	materialRepo.On("GetByName", ctx, "Plastic").Return(plasticMaterial(), nil)
	machineRepo.On("GetByMachineID", ctx, "RVM-001").Return(activeMachine(), nil)
	uow.On("Begin", ctx).Return(ctx, nil)
	uow.On("GetDepositRepository", ctx).Return(depositRepo)
	uow.On("GetStatisticsRepository", ctx).Return(statsRepo)
	depositRepo.On("Create", ctx, mock.Anything).Return(nil)
	statsRepo.On("Increment", ctx, uint64(42), int64(2500), int64(250)).Return(nil)
	statsRepo.On("GetByUserID", ctx, uint64(42)).Return(&entity.UserStatistics{
		UserID:           42,
		TotalWeightGrams: 2500,
		TotalPoints:      250,
		DepositCount:     1,
	}, nil)
	uow.On("Commit", ctx).Return(nil)

	service := NewDepositService(uow, materialRepo, machineRepo, depositRepo, timeProvider, logger, Options{})

	result, err := service.RecordDeposit(ctx, 42, plasticRequest())

	assert.NoError(t, err)
	assert.Equal(t, "2.50", result.Deposit.Points())
	logger.AssertNotCalled(t, "Error", mock.Anything, mock.Anything)
	uow.AssertCalled(t, "Commit", ctx)
}

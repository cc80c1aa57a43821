package deposit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dropme/rvm-backend/internal/domain/entity"
	errs "github.com/dropme/rvm-backend/internal/domain/error"
	"github.com/dropme/rvm-backend/internal/domain/port/usecase"
	coremocks "github.com/dropme/rvm-backend/mocks/port/core"
	persistencemocks "github.com/dropme/rvm-backend/mocks/port/persistence"
)

var fixedTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type coordinatorFixture struct {
	uow          *persistencemocks.MockUnitOfWork
	materialRepo *persistencemocks.MockMaterialRepository
	machineRepo  *persistencemocks.MockMachineRepository
	depositRepo  *persistencemocks.MockDepositRepository
	statsRepo    *persistencemocks.MockStatisticsRepository
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
	coordinator  *Coordinator
}

func newCoordinatorFixture() *coordinatorFixture {
	f := &coordinatorFixture{
		uow:          new(persistencemocks.MockUnitOfWork),
		materialRepo: new(persistencemocks.MockMaterialRepository),
		machineRepo:  new(persistencemocks.MockMachineRepository),
		depositRepo:  new(persistencemocks.MockDepositRepository),
		statsRepo:    new(persistencemocks.MockStatisticsRepository),
		timeProvider: new(coremocks.MockTimeProvider),
		logger:       new(coremocks.MockLogger),
	}

	f.timeProvider.On("Now").Return(fixedTime).Maybe()
	f.logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	f.logger.On("Info", mock.Anything, mock.Anything).Maybe()
	f.logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	f.logger.On("Error", mock.Anything, mock.Anything).Maybe()

	f.coordinator = NewCoordinator(
		f.uow, f.materialRepo, f.machineRepo,
		NewDepositValidator(0), nil,
		f.timeProvider, f.logger,
	)
	return f
}

func plasticMaterial() *entity.Material {
	return &entity.Material{ID: 1, Name: "Plastic", PointsPerKg: 100, Active: true}
}

func activeMachine() *entity.Machine {
	return &entity.Machine{ID: 2, MachineID: "RVM-001", Location: "Cairo Mall - New Cairo", Status: entity.MachineActive}
}

func plasticRequest() usecase.DepositRequest {
	return usecase.DepositRequest{
		WeightKg:     "2.5",
		MaterialName: "Plastic",
		MachineID:    "RVM-001",
	}
}

func TestRecordDeposit_Success(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture()

	f.materialRepo.On("GetByName", ctx, "Plastic").Return(plasticMaterial(), nil)
	f.machineRepo.On("GetByMachineID", ctx, "RVM-001").Return(activeMachine(), nil)

	f.uow.On("Begin", ctx).Return(ctx, nil)
	f.uow.On("GetDepositRepository", ctx).Return(f.depositRepo)
	f.uow.On("GetStatisticsRepository", ctx).Return(f.statsRepo)
	f.depositRepo.On("Create", ctx, mock.AnythingOfType("*entity.Deposit")).Return(nil)
	f.statsRepo.On("Increment", ctx, uint64(42), int64(2500), int64(250)).Return(nil)
	f.statsRepo.On("GetByUserID", ctx, uint64(42)).Return(&entity.UserStatistics{
		UserID:           42,
		TotalWeightGrams: 2500,
		TotalPoints:      250,
		DepositCount:     1,
	}, nil)
	f.uow.On("Commit", ctx).Return(nil)

	result, err := f.coordinator.RecordDeposit(ctx, 42, plasticRequest())

	assert.NoError(t, err)
	assert.Equal(t, "2.50", result.Deposit.Points())
	assert.Equal(t, "2.500", result.Deposit.WeightKg())
	assert.Equal(t, fixedTime, result.Deposit.CreatedAt)
	assert.Regexp(t, `^TXN-[0-9A-F]{12}$`, result.Deposit.Reference)
	assert.Equal(t, "2.500", result.Statistics.TotalWeightKg())
	assert.Equal(t, "2.50", result.Statistics.TotalPointsValue())
	assert.Equal(t, uint64(1), result.Statistics.DepositCount)

	f.uow.AssertExpectations(t)
	f.uow.AssertNotCalled(t, "Rollback", mock.Anything)
	f.depositRepo.AssertExpectations(t)
	f.statsRepo.AssertExpectations(t)
}

func TestRecordDeposit_InvalidWeightFailsBeforeLookups(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture()

	testCases := []string{"0", "-2.5", "abc", "", "250.0"}
	for _, weight := range testCases {
		req := plasticRequest()
		req.WeightKg = weight

		_, err := f.coordinator.RecordDeposit(ctx, 42, req)
		assert.Error(t, err, weight)
		assert.True(t, errs.IsInvalidWeightError(err), "weight %q: got %v", weight, err)
	}

	f.materialRepo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestRecordDeposit_UnknownMaterial(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture()

	f.materialRepo.On("GetByName", ctx, "Unobtainium").Return(nil, errs.ErrUnknownMaterial)

	req := plasticRequest()
	req.MaterialName = "Unobtainium"

	_, err := f.coordinator.RecordDeposit(ctx, 42, req)

	assert.ErrorIs(t, err, errs.ErrUnknownMaterial)
	f.machineRepo.AssertNotCalled(t, "GetByMachineID", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestRecordDeposit_UnknownMachine(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture()

	f.materialRepo.On("GetByName", ctx, "Plastic").Return(plasticMaterial(), nil)
	f.machineRepo.On("GetByMachineID", ctx, "RVM-999").Return(nil, errs.ErrUnknownMachine)

	req := plasticRequest()
	req.MachineID = "RVM-999"

	_, err := f.coordinator.RecordDeposit(ctx, 42, req)

	assert.ErrorIs(t, err, errs.ErrUnknownMachine)
	f.uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestRecordDeposit_MachineInMaintenance(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture()

	machine := activeMachine()
	machine.Status = entity.MachineMaintenance

	f.materialRepo.On("GetByName", ctx, "Plastic").Return(plasticMaterial(), nil)
	f.machineRepo.On("GetByMachineID", ctx, "RVM-001").Return(machine, nil)

	_, err := f.coordinator.RecordDeposit(ctx, 42, plasticRequest())

	// distinct from unknown so the caller can show a specific message
	assert.ErrorIs(t, err, errs.ErrMachineUnavailable)
	assert.NotErrorIs(t, err, errs.ErrUnknownMachine)
	assert.Contains(t, err.Error(), "maintenance")
	f.uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestRecordDeposit_MissingStatisticsRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture()

	f.materialRepo.On("GetByName", ctx, "Plastic").Return(plasticMaterial(), nil)
	f.machineRepo.On("GetByMachineID", ctx, "RVM-001").Return(activeMachine(), nil)

	f.uow.On("Begin", ctx).Return(ctx, nil)
	f.uow.On("GetDepositRepository", ctx).Return(f.depositRepo)
	f.uow.On("GetStatisticsRepository", ctx).Return(f.statsRepo)
	f.depositRepo.On("Create", ctx, mock.Anything).Return(nil)
	f.statsRepo.On("Increment", ctx, uint64(42), int64(2500), int64(250)).Return(errs.ErrMissingUserStatistics)
	f.uow.On("Rollback", ctx).Return(nil)

	_, err := f.coordinator.RecordDeposit(ctx, 42, plasticRequest())

	assert.ErrorIs(t, err, errs.ErrMissingUserStatistics)
	f.uow.AssertCalled(t, "Rollback", ctx)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRecordDeposit_CreateFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture()

	f.materialRepo.On("GetByName", ctx, "Plastic").Return(plasticMaterial(), nil)
	f.machineRepo.On("GetByMachineID", ctx, "RVM-001").Return(activeMachine(), nil)

	dbErr := errors.New("connection reset")
	f.uow.On("Begin", ctx).Return(ctx, nil)
	f.uow.On("GetDepositRepository", ctx).Return(f.depositRepo)
	f.uow.On("GetStatisticsRepository", ctx).Return(f.statsRepo)
	f.depositRepo.On("Create", ctx, mock.Anything).Return(dbErr)
	f.uow.On("Rollback", ctx).Return(nil)

	_, err := f.coordinator.RecordDeposit(ctx, 42, plasticRequest())

	assert.ErrorIs(t, err, dbErr)
	f.statsRepo.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.uow.AssertCalled(t, "Rollback", ctx)
}

func TestRecordDeposit_CommitConflict(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture()

	f.materialRepo.On("GetByName", ctx, "Plastic").Return(plasticMaterial(), nil)
	f.machineRepo.On("GetByMachineID", ctx, "RVM-001").Return(activeMachine(), nil)

	f.uow.On("Begin", ctx).Return(ctx, nil)
	f.uow.On("GetDepositRepository", ctx).Return(f.depositRepo)
	f.uow.On("GetStatisticsRepository", ctx).Return(f.statsRepo)
	f.depositRepo.On("Create", ctx, mock.Anything).Return(nil)
	f.statsRepo.On("Increment", ctx, uint64(42), int64(2500), int64(250)).Return(nil)
	f.statsRepo.On("GetByUserID", ctx, uint64(42)).Return(&entity.UserStatistics{UserID: 42}, nil)
	f.uow.On("Commit", ctx).Return(errors.New("could not serialize access"))
	f.uow.On("Rollback", ctx).Return(nil)

	_, err := f.coordinator.RecordDeposit(ctx, 42, plasticRequest())

	// the whole submission is safe to retry: nothing was persisted
	assert.ErrorIs(t, err, errs.ErrTransactionConflict)
}

func TestRecordDeposit_GuardRejectsDuplicate(t *testing.T) {
	ctx := context.Background()
	f := newCoordinatorFixture()

	guard := NewIntegrityGuard(f.depositRepo, f.timeProvider, f.logger, GuardConfig{
		DuplicateWindow: time.Minute,
	})
	f.coordinator = NewCoordinator(
		f.uow, f.materialRepo, f.machineRepo,
		NewDepositValidator(0), guard,
		f.timeProvider, f.logger,
	)

	f.materialRepo.On("GetByName", ctx, "Plastic").Return(plasticMaterial(), nil)
	f.machineRepo.On("GetByMachineID", ctx, "RVM-001").Return(activeMachine(), nil)
	f.depositRepo.On("CountMatchingSince", ctx, uint64(42), uint64(1), uint64(2), int64(2500),
		fixedTime.Add(-time.Minute)).Return(int64(1), nil)

	_, err := f.coordinator.RecordDeposit(ctx, 42, plasticRequest())

	assert.ErrorIs(t, err, errs.ErrDuplicateDeposit)
	f.uow.AssertNotCalled(t, "Begin", mock.Anything)
}

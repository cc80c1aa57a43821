package persistence

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dropme/rvm-backend/internal/domain/entity"
	"github.com/dropme/rvm-backend/internal/domain/port/persistence"
)

// MockDepositRepository is a mock implementation of the persistence.DepositRepository interface
type MockDepositRepository struct {
	mock.Mock
}

// Create provides a mock function
func (m *MockDepositRepository) Create(ctx context.Context, deposit *entity.Deposit) error {
	args := m.Called(ctx, deposit)
	return args.Error(0)
}

// ListByUser provides a mock function
func (m *MockDepositRepository) ListByUser(ctx context.Context, userID uint64, filter persistence.DepositFilter) ([]*entity.Deposit, int64, error) {
	args := m.Called(ctx, userID, filter)
	var deposits []*entity.Deposit
	if args.Get(0) != nil {
		deposits = args.Get(0).([]*entity.Deposit)
	}
	return deposits, args.Get(1).(int64), args.Error(2)
}

// CountMatchingSince provides a mock function
func (m *MockDepositRepository) CountMatchingSince(ctx context.Context, userID, materialID, machineID uint64, weightGrams int64, since time.Time) (int64, error) {
	args := m.Called(ctx, userID, materialID, machineID, weightGrams, since)
	return args.Get(0).(int64), args.Error(1)
}

// CountByUserSince provides a mock function
func (m *MockDepositRepository) CountByUserSince(ctx context.Context, userID uint64, since time.Time) (int64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(int64), args.Error(1)
}

// SystemTotals provides a mock function
func (m *MockDepositRepository) SystemTotals(ctx context.Context) (*persistence.SystemTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*persistence.SystemTotals), args.Error(1)
}

// TotalsByMaterial provides a mock function
func (m *MockDepositRepository) TotalsByMaterial(ctx context.Context, userID uint64) ([]persistence.MaterialTotals, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]persistence.MaterialTotals), args.Error(1)
}

// TopMaterials provides a mock function
func (m *MockDepositRepository) TopMaterials(ctx context.Context, limit int) ([]persistence.MaterialTotals, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]persistence.MaterialTotals), args.Error(1)
}

// TopMachines provides a mock function
func (m *MockDepositRepository) TopMachines(ctx context.Context, limit int) ([]persistence.MachineTotals, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]persistence.MachineTotals), args.Error(1)
}

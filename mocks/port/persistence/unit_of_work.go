package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dropme/rvm-backend/internal/domain/port/persistence"
)

// MockUnitOfWork is a mock implementation of the persistence.UnitOfWork interface
type MockUnitOfWork struct {
	mock.Mock
}

// Begin provides a mock function
func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return ctx, args.Error(1)
	}
	return args.Get(0).(context.Context), args.Error(1)
}

// Commit provides a mock function
func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Rollback provides a mock function
func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// GetDepositRepository provides a mock function
func (m *MockUnitOfWork) GetDepositRepository(ctx context.Context) persistence.DepositRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.DepositRepository)
}

// GetStatisticsRepository provides a mock function
func (m *MockUnitOfWork) GetStatisticsRepository(ctx context.Context) persistence.StatisticsRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.StatisticsRepository)
}

package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dropme/rvm-backend/internal/domain/entity"
)

// MockMachineRepository is a mock implementation of the persistence.MachineRepository interface
type MockMachineRepository struct {
	mock.Mock
}

// GetByMachineID provides a mock function
func (m *MockMachineRepository) GetByMachineID(ctx context.Context, machineID string) (*entity.Machine, error) {
	args := m.Called(ctx, machineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Machine), args.Error(1)
}

// List provides a mock function
func (m *MockMachineRepository) List(ctx context.Context) ([]*entity.Machine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Machine), args.Error(1)
}

// Create provides a mock function
func (m *MockMachineRepository) Create(ctx context.Context, machine *entity.Machine) error {
	args := m.Called(ctx, machine)
	return args.Error(0)
}

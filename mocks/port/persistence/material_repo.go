package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dropme/rvm-backend/internal/domain/entity"
)

// MockMaterialRepository is a mock implementation of the persistence.MaterialRepository interface
type MockMaterialRepository struct {
	mock.Mock
}

// GetByName provides a mock function
func (m *MockMaterialRepository) GetByName(ctx context.Context, name string) (*entity.Material, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Material), args.Error(1)
}

// List provides a mock function
func (m *MockMaterialRepository) List(ctx context.Context) ([]*entity.Material, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Material), args.Error(1)
}

// Create provides a mock function
func (m *MockMaterialRepository) Create(ctx context.Context, material *entity.Material) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

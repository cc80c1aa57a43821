package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dropme/rvm-backend/internal/domain/entity"
)

// MockStatisticsRepository is a mock implementation of the persistence.StatisticsRepository interface
type MockStatisticsRepository struct {
	mock.Mock
}

// GetByUserID provides a mock function
func (m *MockStatisticsRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.UserStatistics, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserStatistics), args.Error(1)
}

// Create provides a mock function
func (m *MockStatisticsRepository) Create(ctx context.Context, stats *entity.UserStatistics) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

// Increment provides a mock function
func (m *MockStatisticsRepository) Increment(ctx context.Context, userID uint64, weightGrams, pointsEarned int64) error {
	args := m.Called(ctx, userID, weightGrams, pointsEarned)
	return args.Error(0)
}

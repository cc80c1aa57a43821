package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/dropme/rvm-backend/internal/domain/error"
	"github.com/dropme/rvm-backend/mocks/port/core"
)

func TestNewUserStatistics(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should start at zero", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		stats, err := NewUserStatistics(42, mockTimeProvider)

		assert.NoError(t, err)
		assert.Equal(t, uint64(42), stats.UserID)
		assert.Equal(t, "0.000", stats.TotalWeightKg())
		assert.Equal(t, "0.00", stats.TotalPointsValue())
		assert.Equal(t, uint64(0), stats.DepositCount)
	})

	t.Run("should reject an invalid user id", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		_, err := NewUserStatistics(0, mockTimeProvider)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestApplyDeposit(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTimeProvider := new(core.MockTimeProvider)
	mockTimeProvider.On("Now").Return(fixedTime)

	stats, err := NewUserStatistics(42, mockTimeProvider)
	assert.NoError(t, err)

	// first deposit: 2.5kg earning 2.50 points
	stats.ApplyDeposit(2500, 250, mockTimeProvider)
	assert.Equal(t, "2.500", stats.TotalWeightKg())
	assert.Equal(t, "2.50", stats.TotalPointsValue())
	assert.Equal(t, uint64(1), stats.DepositCount)

	// second deposit: 1kg earning 3.00 points
	stats.ApplyDeposit(1000, 300, mockTimeProvider)
	assert.Equal(t, "3.500", stats.TotalWeightKg())
	assert.Equal(t, "5.50", stats.TotalPointsValue())
	assert.Equal(t, uint64(2), stats.DepositCount)
}

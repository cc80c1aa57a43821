package entity

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/dropme/rvm-backend/internal/domain/error"
	"github.com/dropme/rvm-backend/mocks/port/core"
)

func testMaterial(rateHundredths int64) *Material {
	return &Material{
		ID:          7,
		Name:        "Plastic",
		PointsPerKg: rateHundredths,
		Active:      true,
	}
}

func testMachine(status MachineStatus) *Machine {
	return &Machine{
		ID:        3,
		MachineID: "RVM-001",
		Location:  "Cairo Mall - New Cairo",
		Status:    status,
	}
}

func TestNewDeposit(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should compute points from the material rate", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		deposit, err := NewDeposit(42, testMaterial(100), testMachine(MachineActive), 2500, "bottle run", mockTimeProvider)

		assert.NoError(t, err)
		assert.Equal(t, uint64(42), deposit.UserID)
		assert.Equal(t, uint64(7), deposit.MaterialID)
		assert.Equal(t, "Plastic", deposit.MaterialName)
		assert.Equal(t, "RVM-001", deposit.MachineRef)
		assert.Equal(t, int64(2500), deposit.WeightGrams)
		assert.Equal(t, int64(250), deposit.PointsEarned)
		assert.Equal(t, "2.500", deposit.WeightKg())
		assert.Equal(t, "2.50", deposit.Points())
		assert.Equal(t, fixedTime, deposit.CreatedAt)
		assert.Equal(t, "bottle run", deposit.Notes)
	})

	t.Run("should reject an invalid caller", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		_, err := NewDeposit(0, testMaterial(100), testMachine(MachineActive), 2500, "", mockTimeProvider)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("should reject a non-positive weight", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		_, err := NewDeposit(42, testMaterial(100), testMachine(MachineActive), 0, "", mockTimeProvider)

		assert.ErrorIs(t, err, errs.ErrInvalidWeight)
	})
}

func TestNewDepositReference(t *testing.T) {
	pattern := regexp.MustCompile(`^TXN-[0-9A-F]{12}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := NewDepositReference()
		assert.Regexp(t, pattern, ref)
		assert.False(t, seen[ref], "reference %s generated twice", ref)
		seen[ref] = true
	}
}

package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid weight", ErrInvalidWeight, CodeInvalidWeight},
		{"wrapped invalid weight", fmt.Errorf("validation: %w", ErrInvalidWeight), CodeInvalidWeight},
		{"invalid amount maps to weight code", ErrInvalidAmount, CodeInvalidWeight},
		{"unknown material", ErrUnknownMaterial, CodeUnknownMaterial},
		{"unknown machine", ErrUnknownMachine, CodeUnknownMachine},
		{"machine unavailable", ErrMachineUnavailable, CodeMachineUnavailable},
		{"duplicate deposit", ErrDuplicateDeposit, CodeDuplicateDeposit},
		{"limit exceeded", ErrDepositLimitExceeded, CodeDepositLimitExceeded},
		{"transaction conflict", ErrTransactionConflict, CodeTransactionConflict},
		{"invalid user id", ErrInvalidUserID, CodeInvalidUserID},
		{"missing statistics stays internal", ErrMissingUserStatistics, CodeInternalServer},
		{"database failure stays internal", ErrDatabaseConnection, CodeInternalServer},
		{"unknown error", errors.New("boom"), CodeInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestDepositError(t *testing.T) {
	err := NewDepositError(42, "Plastic", "RVM-001", "2.500", "material lookup failed", ErrUnknownMaterial)

	assert.ErrorIs(t, err, ErrUnknownMaterial)
	assert.Contains(t, err.Error(), "user 42")
	assert.Contains(t, err.Error(), "RVM-001")

	var depErr *DepositError
	assert.True(t, errors.As(err, &depErr))

	fields := depErr.LogFields()
	assert.Equal(t, uint64(42), fields["user_id"])
	assert.Equal(t, "Plastic", fields["material"])
	assert.Equal(t, CodeUnknownMaterial, fields["error_code"])
}

func TestMachineUnavailableError(t *testing.T) {
	err := NewMachineUnavailableError("RVM-002", "maintenance")

	assert.ErrorIs(t, err, ErrMachineUnavailable)
	assert.True(t, IsMachineUnavailableError(err))
	assert.Contains(t, err.Error(), "maintenance")

	var unavailErr *MachineUnavailableError
	assert.True(t, errors.As(err, &unavailErr))
	assert.Equal(t, "RVM-002", unavailErr.LogFields()["machine_id"])
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsInvalidWeightError(fmt.Errorf("x: %w", ErrInvalidWeight)))
	assert.True(t, IsUnknownReferenceError(ErrUnknownMachine))
	assert.True(t, IsDuplicateDepositError(ErrDuplicateDeposit))
	assert.True(t, IsTransactionConflictError(ErrTransactionConflict))
	assert.True(t, IsMissingStatisticsError(ErrMissingUserStatistics))
	assert.True(t, IsNotFoundError(ErrUnknownMaterial))
	assert.False(t, IsNotFoundError(ErrMachineUnavailable))
	assert.False(t, IsDuplicateDepositError(errors.New("other")))
}

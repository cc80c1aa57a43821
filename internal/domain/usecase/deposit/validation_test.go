package deposit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/dropme/rvm-backend/internal/domain/error"
	"github.com/dropme/rvm-backend/internal/domain/port/usecase"
)

func TestValidateSubmission(t *testing.T) {
	validator := NewDepositValidator(100)

	testCases := []struct {
		name      string
		userID    uint64
		req       usecase.DepositRequest
		wantGrams int64
		wantErr   error
	}{
		{
			name:      "valid submission",
			userID:    1,
			req:       usecase.DepositRequest{WeightKg: "2.5", MaterialName: "Plastic", MachineID: "RVM-001"},
			wantGrams: 2500,
		},
		{
			name:      "weight at the ceiling",
			userID:    1,
			req:       usecase.DepositRequest{WeightKg: "100", MaterialName: "Metal", MachineID: "RVM-002"},
			wantGrams: 100000,
		},
		{
			name:      "smallest representable weight",
			userID:    1,
			req:       usecase.DepositRequest{WeightKg: "0.001", MaterialName: "Glass", MachineID: "RVM-003"},
			wantGrams: 1,
		},
		{
			name:    "anonymous caller",
			userID:  0,
			req:     usecase.DepositRequest{WeightKg: "2.5", MaterialName: "Plastic", MachineID: "RVM-001"},
			wantErr: errs.ErrInvalidUserID,
		},
		{
			name:    "missing material",
			userID:  1,
			req:     usecase.DepositRequest{WeightKg: "2.5", MachineID: "RVM-001"},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name:    "missing machine",
			userID:  1,
			req:     usecase.DepositRequest{WeightKg: "2.5", MaterialName: "Plastic"},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name:    "zero weight",
			userID:  1,
			req:     usecase.DepositRequest{WeightKg: "0", MaterialName: "Plastic", MachineID: "RVM-001"},
			wantErr: errs.ErrInvalidWeight,
		},
		{
			name:    "negative weight",
			userID:  1,
			req:     usecase.DepositRequest{WeightKg: "-1.5", MaterialName: "Plastic", MachineID: "RVM-001"},
			wantErr: errs.ErrInvalidWeight,
		},
		{
			name:    "non numeric weight",
			userID:  1,
			req:     usecase.DepositRequest{WeightKg: "heavy", MaterialName: "Plastic", MachineID: "RVM-001"},
			wantErr: errs.ErrInvalidWeight,
		},
		{
			name:    "too many decimal places",
			userID:  1,
			req:     usecase.DepositRequest{WeightKg: "1.2345", MaterialName: "Plastic", MachineID: "RVM-001"},
			wantErr: errs.ErrInvalidWeight,
		},
		{
			name:    "weight above the ceiling",
			userID:  1,
			req:     usecase.DepositRequest{WeightKg: "100.001", MaterialName: "Plastic", MachineID: "RVM-001"},
			wantErr: errs.ErrInvalidWeight,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			grams, err := validator.ValidateSubmission(tc.userID, tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantGrams, grams)
		})
	}
}

func TestNewDepositValidator_Defaults(t *testing.T) {
	for _, maxKg := range []int{0, -5} {
		validator := NewDepositValidator(maxKg)

		_, err := validator.ValidateSubmission(1, usecase.DepositRequest{
			WeightKg: "100", MaterialName: "Plastic", MachineID: "RVM-001",
		})
		assert.NoError(t, err)

		_, err = validator.ValidateSubmission(1, usecase.DepositRequest{
			WeightKg: "100.001", MaterialName: "Plastic", MachineID: "RVM-001",
		})
		assert.ErrorIs(t, err, errs.ErrInvalidWeight)
	}
}

package deposit

import (
	"fmt"

	"github.com/dropme/rvm-backend/internal/domain/entity"
	errs "github.com/dropme/rvm-backend/internal/domain/error"
	"github.com/dropme/rvm-backend/internal/domain/port/usecase"
)

// DefaultMaxWeightKg is the per-deposit ceiling applied when no limit is configured
const DefaultMaxWeightKg = 100

// DepositValidator checks the raw submission before any reference-data
// lookup, so malformed requests fail without touching the database
type DepositValidator struct {
	maxWeightGrams int64
}

// NewDepositValidator creates a validator with the given per-deposit
// weight ceiling in kilograms; zero or negative falls back to the default
func NewDepositValidator(maxWeightKg int) *DepositValidator {
	if maxWeightKg <= 0 {
		maxWeightKg = DefaultMaxWeightKg
	}
	return &DepositValidator{
		maxWeightGrams: int64(maxWeightKg) * 1000,
	}
}

// ValidateSubmission validates the caller identity and all submission
// fields, returning the parsed weight in grams
func (v *DepositValidator) ValidateSubmission(userID uint64, req usecase.DepositRequest) (int64, error) {
	if userID == 0 {
		return 0, errs.ErrInvalidUserID
	}

	if req.MaterialName == "" {
		return 0, fmt.Errorf("%w: material name is required", errs.ErrInvalidRequest)
	}
	if req.MachineID == "" {
		return 0, fmt.Errorf("%w: machine id is required", errs.ErrInvalidRequest)
	}

	grams, err := entity.ParseWeightKg(req.WeightKg)
	if err != nil {
		return 0, err
	}
	if grams <= 0 {
		return 0, fmt.Errorf("%w: weight must be greater than zero", errs.ErrInvalidWeight)
	}
	if grams > v.maxWeightGrams {
		return 0, fmt.Errorf("%w: weight cannot exceed %s kg per deposit",
			errs.ErrInvalidWeight, entity.FormatWeightKg(v.maxWeightGrams))
	}

	return grams, nil
}

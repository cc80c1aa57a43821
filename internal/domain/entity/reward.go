package entity

import (
	errs "github.com/dropme/rvm-backend/internal/domain/error"
)

// ComputeReward calculates the points earned for a deposit:
// weight_kg * points_per_kg, rounded half-up to 2 decimal places.
//
// The whole calculation stays in integer fixed point. Grams carry a factor
// of 1000 and the rate a factor of 100, so the raw product carries 100000
// and dividing by 1000 (with half-up rounding) lands on point hundredths.
// Rates are bounded well below overflow territory for any weight that
// passes validation.
func ComputeReward(weightGrams, ratePerKgHundredths int64) (int64, error) {
	if weightGrams <= 0 {
		return 0, errs.ErrInvalidWeight
	}
	if ratePerKgHundredths <= 0 {
		return 0, errs.ErrInvalidRate
	}

	raw := weightGrams * ratePerKgHundredths
	return (raw + 500) / 1000, nil
}

package entity

import (
	"time"

	errs "github.com/dropme/rvm-backend/internal/domain/error"
	coreport "github.com/dropme/rvm-backend/internal/domain/port/core"
)

// UserStatistics holds one user's cumulative recycling totals. The row is
// created once when the user registers and afterwards changes only through
// the deposit transaction, as an increment in the same commit as the
// deposit row. Totals are never recomputed from the deposit history.
type UserStatistics struct {
	UserID           uint64
	TotalWeightGrams int64 // cumulative weight in grams
	TotalPoints      int64 // cumulative points in hundredths
	DepositCount     uint64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewUserStatistics creates an empty statistics row for a newly registered user
func NewUserStatistics(userID uint64, timeProvider coreport.TimeProvider) (*UserStatistics, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	now := timeProvider.Now()
	return &UserStatistics{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ApplyDeposit folds one successful deposit into the totals
func (s *UserStatistics) ApplyDeposit(weightGrams, pointsEarned int64, timeProvider coreport.TimeProvider) {
	s.TotalWeightGrams += weightGrams
	s.TotalPoints += pointsEarned
	s.DepositCount++
	s.UpdatedAt = timeProvider.Now()
}

// TotalWeightKg returns the cumulative weight formatted with 3 decimal places
func (s *UserStatistics) TotalWeightKg() string {
	return FormatWeightKg(s.TotalWeightGrams)
}

// TotalPointsValue returns the cumulative points formatted with 2 decimal places
func (s *UserStatistics) TotalPointsValue() string {
	return FormatPoints(s.TotalPoints)
}

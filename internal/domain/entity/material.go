package entity

import (
	"time"

	errs "github.com/dropme/rvm-backend/internal/domain/error"
	coreport "github.com/dropme/rvm-backend/internal/domain/port/core"
)

// Material is a recyclable material type and its reward rate.
// Reference data for the deposit flow: created and updated by an
// administrative process, never mutated here.
type Material struct {
	ID          uint64
	Name        string // unique, matched exactly (case-sensitive)
	PointsPerKg int64  // rate in point hundredths per kilogram
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewMaterial creates a material with the given name and rate, where the rate
// is a decimal string with at most 2 decimal places (e.g. "1.00")
func NewMaterial(name, pointsPerKg, description string, timeProvider coreport.TimeProvider) (*Material, error) {
	if name == "" {
		return nil, errs.ErrUnknownMaterial
	}

	rate, err := ParsePoints(pointsPerKg)
	if err != nil {
		return nil, err
	}
	if rate <= 0 {
		return nil, errs.ErrInvalidRate
	}

	now := timeProvider.Now()
	return &Material{
		Name:        name,
		PointsPerKg: rate,
		Description: description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Rate returns the points-per-kg rate formatted with 2 decimal places
func (m *Material) Rate() string {
	return FormatPoints(m.PointsPerKg)
}

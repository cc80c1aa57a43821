package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/dropme/rvm-backend/internal/domain/error"
	coreport "github.com/dropme/rvm-backend/internal/domain/port/core"
)

// Deposit is one recycling submission. Immutable once created: there is no
// update or delete path, and the points carry the material rate that was in
// effect at creation time.
type Deposit struct {
	ID           uint64
	Reference    string // unique external reference, e.g. "TXN-1A2B3C4D5E6F"
	UserID       uint64
	MaterialID   uint64
	MaterialName string
	MachineID    uint64
	MachineRef   string
	WeightGrams  int64 // weight in grams (kg with 3 decimal places)
	PointsEarned int64 // points in hundredths, derived at creation time
	Notes        string
	CreatedAt    time.Time
}

// NewDeposit builds a deposit for the given user from resolved reference data,
// computing the reward from the material's current rate and stamping a
// generated reference and creation time
func NewDeposit(
	userID uint64,
	material *Material,
	machine *Machine,
	weightGrams int64,
	notes string,
	timeProvider coreport.TimeProvider,
) (*Deposit, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	points, err := ComputeReward(weightGrams, material.PointsPerKg)
	if err != nil {
		return nil, err
	}

	return &Deposit{
		Reference:    NewDepositReference(),
		UserID:       userID,
		MaterialID:   material.ID,
		MaterialName: material.Name,
		MachineID:    machine.ID,
		MachineRef:   machine.MachineID,
		WeightGrams:  weightGrams,
		PointsEarned: points,
		Notes:        notes,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// NewDepositReference generates a deposit reference in the form
// "TXN-" followed by 12 uppercase hex characters
func NewDepositReference() string {
	id := uuid.New()
	hex := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return "TXN-" + hex[:12]
}

// WeightKg returns the deposit weight formatted with 3 decimal places
func (d *Deposit) WeightKg() string {
	return FormatWeightKg(d.WeightGrams)
}

// Points returns the earned points formatted with 2 decimal places
func (d *Deposit) Points() string {
	return FormatPoints(d.PointsEarned)
}

package entity

import (
	"time"

	errs "github.com/dropme/rvm-backend/internal/domain/error"
	coreport "github.com/dropme/rvm-backend/internal/domain/port/core"
)

// MachineStatus represents the operational state of an RVM machine
type MachineStatus string

// Machine statuses
const (
	MachineActive      MachineStatus = "active"
	MachineInactive    MachineStatus = "inactive"
	MachineMaintenance MachineStatus = "maintenance"
)

// Machine is a reverse-vending machine deployed at a location.
// Reference data for the deposit flow: status changes happen through an
// external operations process.
type Machine struct {
	ID        uint64
	MachineID string // unique external identifier, e.g. "RVM-001"
	Location  string
	Status    MachineStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMachine creates a machine with the given external id, location and status
func NewMachine(machineID, location string, status string, timeProvider coreport.TimeProvider) (*Machine, error) {
	if machineID == "" {
		return nil, errs.ErrUnknownMachine
	}
	if !IsValidMachineStatus(status) {
		return nil, errs.ErrInvalidMachineStatus
	}

	now := timeProvider.Now()
	return &Machine{
		MachineID: machineID,
		Location:  location,
		Status:    MachineStatus(status),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsActive reports whether the machine currently accepts deposits
func (m *Machine) IsActive() bool {
	return m.Status == MachineActive
}

// IsValidMachineStatus validates if the status is one of the allowed values
func IsValidMachineStatus(status string) bool {
	return status == string(MachineActive) ||
		status == string(MachineInactive) ||
		status == string(MachineMaintenance)
}

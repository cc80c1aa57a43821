package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidWeight        = 4001
	CodeUnknownMaterial      = 4002
	CodeUnknownMachine       = 4003
	CodeMachineUnavailable   = 4004
	CodeDuplicateDeposit     = 4005
	CodeDepositLimitExceeded = 4006
	CodeInvalidUserID        = 4007
	CodeInvalidRequest       = 4008
	CodeTransactionConflict  = 4090
	CodeNotFound             = 4040
	CodeForbidden            = 4030

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidWeight is returned when the deposit weight is missing,
	// non-positive, malformed or above the per-deposit maximum
	ErrInvalidWeight = errors.New("invalid deposit weight")

	// ErrUnknownMaterial is returned when the material name does not exist in the catalog
	ErrUnknownMaterial = errors.New("unknown material")

	// ErrUnknownMachine is returned when the machine id does not exist in the registry
	ErrUnknownMachine = errors.New("unknown machine")

	// ErrMachineUnavailable is returned when the machine exists but is not active
	ErrMachineUnavailable = errors.New("machine is not available for deposits")

	// ErrMissingUserStatistics is returned when the caller has no statistics row.
	// Registration always creates one, so this is an internal consistency failure.
	ErrMissingUserStatistics = errors.New("user statistics record is missing")

	// ErrDuplicateDeposit is returned when an identical deposit was submitted
	// within the duplicate-detection window
	ErrDuplicateDeposit = errors.New("duplicate deposit detected")

	// ErrDepositLimitExceeded is returned when the user hit the daily deposit cap
	ErrDepositLimitExceeded = errors.New("daily deposit limit exceeded")

	// ErrTransactionConflict is returned when the commit failed on a lock or
	// serialization conflict; the whole submission is safe to retry
	ErrTransactionConflict = errors.New("transaction conflict, please retry")

	// ErrInvalidUserID is returned when the caller identity is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidRate is returned when a material rate is not a positive amount
	ErrInvalidRate = errors.New("points rate must be positive")

	// ErrInvalidAmount is returned when a decimal field cannot be parsed
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInvalidMachineStatus is returned when a machine status is not a known value
	ErrInvalidMachineStatus = errors.New("invalid machine status")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden is returned when the caller lacks the required role
	ErrForbidden = errors.New("access denied")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidWeight), errors.Is(err, ErrInvalidAmount):
		return CodeInvalidWeight
	case errors.Is(err, ErrUnknownMaterial):
		return CodeUnknownMaterial
	case errors.Is(err, ErrUnknownMachine):
		return CodeUnknownMachine
	case errors.Is(err, ErrMachineUnavailable):
		return CodeMachineUnavailable
	case errors.Is(err, ErrDuplicateDeposit):
		return CodeDuplicateDeposit
	case errors.Is(err, ErrDepositLimitExceeded):
		return CodeDepositLimitExceeded
	case errors.Is(err, ErrTransactionConflict):
		return CodeTransactionConflict
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	default:
		return CodeInternalServer
	}
}

// DepositError carries the context of a failed deposit submission
type DepositError struct {
	UserID       uint64
	MaterialName string
	MachineID    string
	Weight       string
	Reason       string
	Err          error
}

// Error implements the error interface for DepositError
func (e *DepositError) Error() string {
	return fmt.Sprintf("deposit failed for user %d (material: %s, machine: %s, weight: %s): %s - %v",
		e.UserID, e.MaterialName, e.MachineID, e.Weight, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *DepositError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *DepositError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "deposit_error",
		"user_id":    e.UserID,
		"material":   e.MaterialName,
		"machine_id": e.MachineID,
		"weight_kg":  e.Weight,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewDepositError creates a detailed deposit error
func NewDepositError(userID uint64, materialName, machineID, weight, reason string, err error) error {
	return &DepositError{
		UserID:       userID,
		MaterialName: materialName,
		MachineID:    machineID,
		Weight:       weight,
		Reason:       reason,
		Err:          err,
	}
}

// MachineUnavailableError reports a machine that exists but cannot take deposits
type MachineUnavailableError struct {
	MachineID string
	Status    string
}

// Error implements the error interface
func (e *MachineUnavailableError) Error() string {
	return fmt.Sprintf("machine %s is not accepting deposits (status: %s)", e.MachineID, e.Status)
}

// Is checks if the target error is an ErrMachineUnavailable
func (e *MachineUnavailableError) Is(target error) bool {
	return target == ErrMachineUnavailable
}

// LogFields returns a map of fields for structured logging
func (e *MachineUnavailableError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "machine_unavailable",
		"machine_id": e.MachineID,
		"status":     e.Status,
		"error_code": CodeMachineUnavailable,
	}
}

// NewMachineUnavailableError creates a new detailed machine availability error
func NewMachineUnavailableError(machineID, status string) error {
	return &MachineUnavailableError{
		MachineID: machineID,
		Status:    status,
	}
}

// IsInvalidWeightError checks if the error is a weight validation error
func IsInvalidWeightError(err error) bool {
	return errors.Is(err, ErrInvalidWeight) || errors.Is(err, ErrInvalidAmount)
}

// IsUnknownReferenceError checks if the error is an unknown material or machine
func IsUnknownReferenceError(err error) bool {
	return errors.Is(err, ErrUnknownMaterial) || errors.Is(err, ErrUnknownMachine)
}

// IsMachineUnavailableError checks if the error is a machine availability error
func IsMachineUnavailableError(err error) bool {
	return errors.Is(err, ErrMachineUnavailable)
}

// IsDuplicateDepositError checks if the error is a duplicate deposit error
func IsDuplicateDepositError(err error) bool {
	return errors.Is(err, ErrDuplicateDeposit)
}

// IsTransactionConflictError checks if the error is a retryable commit conflict
func IsTransactionConflictError(err error) bool {
	return errors.Is(err, ErrTransactionConflict)
}

// IsMissingStatisticsError checks if the error is the internal missing-statistics failure
func IsMissingStatisticsError(err error) bool {
	return errors.Is(err, ErrMissingUserStatistics)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUnknownMaterial) ||
		errors.Is(err, ErrUnknownMachine)
}

package persistence

import (
	"context"

	"github.com/dropme/rvm-backend/internal/domain/entity"
)

// MachineRepository provides read-only access to the machine registry.
// Machine status is mutated by an external operations process, never here.
type MachineRepository interface {
	// GetByMachineID retrieves a machine by its external identifier
	// (e.g. "RVM-001"), regardless of status; availability is the
	// caller's decision so inactive machines get a distinct error.
	//
	// Possible errors:
	// - ErrUnknownMachine: if no machine carries that identifier
	// - ErrDatabaseConnection: if the database is unreachable
	GetByMachineID(ctx context.Context, machineID string) (*entity.Machine, error)

	// List returns all machines that currently accept deposits
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	List(ctx context.Context) ([]*entity.Machine, error)

	// Create inserts a machine. Used by the seed migration only.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, machine *entity.Machine) error
}

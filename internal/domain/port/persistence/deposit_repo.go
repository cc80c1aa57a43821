package persistence

import (
	"context"
	"time"

	"github.com/dropme/rvm-backend/internal/domain/entity"
)

// DepositFilter narrows a deposit history query
type DepositFilter struct {
	MaterialName string // empty means all materials
	Limit        int
	Offset       int
}

// SystemTotals aggregates all deposits platform-wide
type SystemTotals struct {
	TotalWeightGrams int64
	TotalPoints      int64
	DepositCount     uint64
}

// MaterialTotals aggregates deposits per material
type MaterialTotals struct {
	MaterialName     string
	TotalWeightGrams int64
	TotalPoints      int64
	DepositCount     uint64
}

// MachineTotals aggregates deposits per machine
type MachineTotals struct {
	MachineRef       string
	Location         string
	TotalWeightGrams int64
	DepositCount     uint64
}

// DepositRepository stores and queries deposit records. Deposits are
// insert-only; there is no update or delete path.
type DepositRepository interface {
	// Create saves a new deposit. Called inside the deposit transaction,
	// in the same commit as the statistics increment.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, deposit *entity.Deposit) error

	// ListByUser returns a page of the user's deposits, newest first,
	// along with the total count matching the filter
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	ListByUser(ctx context.Context, userID uint64, filter DepositFilter) ([]*entity.Deposit, int64, error)

	// CountMatchingSince counts deposits by the user with identical
	// material, machine and weight created at or after the given time.
	// Drives duplicate-submission detection.
	CountMatchingSince(ctx context.Context, userID, materialID, machineID uint64, weightGrams int64, since time.Time) (int64, error)

	// CountByUserSince counts all deposits by the user created at or
	// after the given time. Drives the daily deposit cap.
	CountByUserSince(ctx context.Context, userID uint64, since time.Time) (int64, error)

	// SystemTotals aggregates every deposit on the platform
	SystemTotals(ctx context.Context) (*SystemTotals, error)

	// TotalsByMaterial aggregates one user's deposits per material,
	// heaviest material first
	TotalsByMaterial(ctx context.Context, userID uint64) ([]MaterialTotals, error)

	// TopMaterials aggregates all deposits per material, heaviest first
	TopMaterials(ctx context.Context, limit int) ([]MaterialTotals, error)

	// TopMachines aggregates all deposits per machine, busiest first
	TopMachines(ctx context.Context, limit int) ([]MachineTotals, error)
}

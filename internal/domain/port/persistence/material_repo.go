package persistence

import (
	"context"

	"github.com/dropme/rvm-backend/internal/domain/entity"
)

// MaterialRepository provides read-only access to the material catalog.
// The deposit flow resolves materials by exact, case-sensitive name on
// every submission, so implementations must make GetByName an indexed
// lookup.
type MaterialRepository interface {
	// GetByName retrieves an active material by its exact name
	//
	// Possible errors:
	// - ErrUnknownMaterial: if no active material carries that name
	// - ErrDatabaseConnection: if the database is unreachable
	GetByName(ctx context.Context, name string) (*entity.Material, error)

	// List returns all active materials ordered by name
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	List(ctx context.Context) ([]*entity.Material, error)

	// Create inserts a material. Used by the seed migration only; the
	// deposit flow never writes to the catalog.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, material *entity.Material) error
}

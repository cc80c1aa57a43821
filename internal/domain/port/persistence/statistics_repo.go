package persistence

import (
	"context"

	"github.com/dropme/rvm-backend/internal/domain/entity"
)

// StatisticsRepository maintains the per-user cumulative totals row.
// All mutation flows through Increment as part of the deposit transaction.
type StatisticsRepository interface {
	// GetByUserID retrieves a user's statistics row
	//
	// Possible errors:
	// - ErrMissingUserStatistics: if the row does not exist
	// - ErrDatabaseConnection: if the database is unreachable
	GetByUserID(ctx context.Context, userID uint64) (*entity.UserStatistics, error)

	// Create inserts an empty statistics row. Registration (external to
	// this service) and the seed migration are the only callers.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, stats *entity.UserStatistics) error

	// Increment atomically adds one deposit's weight and points to the
	// user's totals and bumps the deposit count by one. The add happens
	// at the SQL level so concurrent deposits serialize on the row and
	// never lose an update. A missing row is an internal consistency
	// failure, not a reason to create one.
	//
	// Possible errors:
	// - ErrMissingUserStatistics: if the row does not exist
	// - ErrTransactionConflict: if the row is locked past the driver's patience
	// - ErrDatabaseConnection: if the database is unreachable
	Increment(ctx context.Context, userID uint64, weightGrams, pointsEarned int64) error
}

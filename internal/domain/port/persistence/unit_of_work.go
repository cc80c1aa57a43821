package persistence

import (
	"context"
)

// UnitOfWork coordinates the deposit insert and the statistics increment
// so both commit or roll back as one atomic unit. The active transaction
// travels in the returned context; repositories obtained from that context
// run inside it.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetDepositRepository returns a deposit repository bound to the current transaction
	GetDepositRepository(ctx context.Context) DepositRepository

	// GetStatisticsRepository returns a statistics repository bound to the current transaction
	GetStatisticsRepository(ctx context.Context) StatisticsRepository
}

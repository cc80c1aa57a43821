package usecase

import (
	"context"

	"github.com/dropme/rvm-backend/internal/domain/entity"
)

// DepositRequest carries the raw submission fields. The caller identity
// arrives separately, already verified by the gateway.
type DepositRequest struct {
	WeightKg     string
	MaterialName string
	MachineID    string
	Notes        string
}

// DepositResult is the outcome of a successful deposit: the persisted
// record plus the caller's updated cumulative totals
type DepositResult struct {
	Deposit    *entity.Deposit
	Statistics *entity.UserStatistics
}

// DepositUseCase records deposits: validates the submission, resolves
// reference data, computes the reward and commits the deposit together
// with the statistics increment atomically
type DepositUseCase interface {
	RecordDeposit(ctx context.Context, userID uint64, req DepositRequest) (*DepositResult, error)
}

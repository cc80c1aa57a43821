package usecase

import (
	"context"

	"github.com/dropme/rvm-backend/internal/domain/entity"
	"github.com/dropme/rvm-backend/internal/domain/port/persistence"
)

// HistoryRequest selects a page of a user's deposit history
type HistoryRequest struct {
	MaterialName string // empty means all materials
	Page         int    // 1-based
	PageSize     int
}

// HistoryResult is one page of deposit history
type HistoryResult struct {
	Deposits   []*entity.Deposit
	TotalCount int64
	Page       int
	TotalPages int
}

// UserSummary combines a user's cumulative totals with a per-material
// breakdown and their most recent deposits
type UserSummary struct {
	Statistics *entity.UserStatistics
	Breakdown  []persistence.MaterialTotals
	Recent     []*entity.Deposit
}

// SystemStats is the staff-only platform-wide view
type SystemStats struct {
	Totals       *persistence.SystemTotals
	TopMaterials []persistence.MaterialTotals
	TopMachines  []persistence.MachineTotals
}

// ReportingUseCase serves the read-only query surfaces over persisted
// deposits and statistics; no additional computation happens here
type ReportingUseCase interface {
	GetUserSummary(ctx context.Context, userID uint64) (*UserSummary, error)
	ListDeposits(ctx context.Context, userID uint64, req HistoryRequest) (*HistoryResult, error)
	GetSystemStats(ctx context.Context) (*SystemStats, error)
}

// CatalogUseCase lists the reference data exposed to clients
type CatalogUseCase interface {
	ListMaterials(ctx context.Context) ([]*entity.Material, error)
	ListMachines(ctx context.Context) ([]*entity.Machine, error)
}

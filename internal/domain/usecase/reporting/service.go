package reporting

import (
	"context"

	coreport "github.com/dropme/rvm-backend/internal/domain/port/core"
	"github.com/dropme/rvm-backend/internal/domain/port/persistence"
	"github.com/dropme/rvm-backend/internal/domain/port/usecase"
)

const (
	// DefaultPageSize applies when the history request does not set one
	DefaultPageSize = 20
	// MaxPageSize caps a single history page
	MaxPageSize = 100
	// RecentDepositsLimit is how many latest deposits the summary includes
	RecentDepositsLimit = 5
	// TopEntriesLimit bounds the per-material and per-machine leaderboards
	TopEntriesLimit = 5
)

// Service answers the read-only query surfaces: user summary, deposit
// history and platform-wide statistics. It never opens a transaction;
// every method is a plain read.
type Service struct {
	depositRepo persistence.DepositRepository
	statsRepo   persistence.StatisticsRepository
	logger      coreport.Logger
}

// NewReportingService creates the reporting use case over the given repositories
func NewReportingService(
	depositRepo persistence.DepositRepository,
	statsRepo persistence.StatisticsRepository,
	logger coreport.Logger,
) *Service {
	return &Service{
		depositRepo: depositRepo,
		statsRepo:   statsRepo,
		logger:      logger,
	}
}

// GetUserSummary implements usecase.ReportingUseCase
func (s *Service) GetUserSummary(ctx context.Context, userID uint64) (*usecase.UserSummary, error) {
	stats, err := s.statsRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load user statistics", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	breakdown, err := s.depositRepo.TotalsByMaterial(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, _, err := s.depositRepo.ListByUser(ctx, userID, persistence.DepositFilter{
		Limit: RecentDepositsLimit,
	})
	if err != nil {
		return nil, err
	}

	return &usecase.UserSummary{
		Statistics: stats,
		Breakdown:  breakdown,
		Recent:     recent,
	}, nil
}

// ListDeposits implements usecase.ReportingUseCase
func (s *Service) ListDeposits(ctx context.Context, userID uint64, req usecase.HistoryRequest) (*usecase.HistoryResult, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	deposits, total, err := s.depositRepo.ListByUser(ctx, userID, persistence.DepositFilter{
		MaterialName: req.MaterialName,
		Limit:        pageSize,
		Offset:       (page - 1) * pageSize,
	})
	if err != nil {
		s.logger.Error("Failed to list deposits", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &usecase.HistoryResult{
		Deposits:   deposits,
		TotalCount: total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// GetSystemStats implements usecase.ReportingUseCase
func (s *Service) GetSystemStats(ctx context.Context) (*usecase.SystemStats, error) {
	totals, err := s.depositRepo.SystemTotals(ctx)
	if err != nil {
		s.logger.Error("Failed to aggregate system totals", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	topMaterials, err := s.depositRepo.TopMaterials(ctx, TopEntriesLimit)
	if err != nil {
		return nil, err
	}

	topMachines, err := s.depositRepo.TopMachines(ctx, TopEntriesLimit)
	if err != nil {
		return nil, err
	}

	return &usecase.SystemStats{
		Totals:       totals,
		TopMaterials: topMaterials,
		TopMachines:  topMachines,
	}, nil
}

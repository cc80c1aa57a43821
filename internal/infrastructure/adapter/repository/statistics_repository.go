package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dropme/rvm-backend/internal/domain/entity"
	errs "github.com/dropme/rvm-backend/internal/domain/error"
	coreport "github.com/dropme/rvm-backend/internal/domain/port/core"
	"github.com/dropme/rvm-backend/internal/infrastructure/adapter/model"
)

// StatisticsRepository implements the statistics repository port using GORM
type StatisticsRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewStatisticsRepository creates a new StatisticsRepository instance
func NewStatisticsRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *StatisticsRepository {
	return &StatisticsRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func statisticsModelToEntity(m *model.UserStatistics) *entity.UserStatistics {
	return &entity.UserStatistics{
		UserID:           m.UserID,
		TotalWeightGrams: m.TotalWeightGrams,
		TotalPoints:      m.TotalPoints,
		DepositCount:     m.DepositCount,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (r *StatisticsRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User statistics row missing", map[string]any{
			"user_id": userID,
		})
		return errs.ErrMissingUserStatistics
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsLockError(err) {
		return fmt.Errorf("%w: %s", errs.ErrTransactionConflict, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByUserID retrieves a user's cumulative statistics
func (r *StatisticsRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.UserStatistics, error) {
	var statsModel model.UserStatistics
	result := r.db.WithContext(ctx).First(&statsModel, "user_id = ?", userID)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user statistics", result.Error, userID)
	}

	return statisticsModelToEntity(&statsModel), nil
}

// Create persists a fresh zero-valued statistics row for a user
func (r *StatisticsRepository) Create(ctx context.Context, stats *entity.UserStatistics) error {
	statsModel := model.UserStatistics{
		UserID:           stats.UserID,
		TotalWeightGrams: stats.TotalWeightGrams,
		TotalPoints:      stats.TotalPoints,
		DepositCount:     stats.DepositCount,
		CreatedAt:        stats.CreatedAt,
		UpdatedAt:        stats.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&statsModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Statistics row already exists", map[string]any{
				"user_id": stats.UserID,
			})
			return fmt.Errorf("%w: statistics for user %d already exist", errs.ErrInvalidRequest, stats.UserID)
		}
		return r.handleDatabaseError("creating user statistics", result.Error, stats.UserID)
	}

	return nil
}

// Increment adds a deposit's weight and points to the user's totals and
// bumps the deposit count in one UPDATE. The addition happens in SQL, so
// concurrent deposits never overwrite each other's totals.
func (r *StatisticsRepository) Increment(ctx context.Context, userID uint64, weightGrams, pointsEarned int64) error {
	result := r.db.WithContext(ctx).Model(&model.UserStatistics{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"total_weight_grams": gorm.Expr("total_weight_grams + ?", weightGrams),
			"total_points":       gorm.Expr("total_points + ?", pointsEarned),
			"deposit_count":      gorm.Expr("deposit_count + 1"),
			"updated_at":         r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("incrementing user statistics", result.Error, userID)
	}

	if result.RowsAffected == 0 {
		r.logger.Error("Statistics increment matched no row", map[string]any{
			"user_id": userID,
		})
		return errs.ErrMissingUserStatistics
	}

	return nil
}

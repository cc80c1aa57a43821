package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dropme/rvm-backend/internal/domain/entity"
	errs "github.com/dropme/rvm-backend/internal/domain/error"
	coreport "github.com/dropme/rvm-backend/internal/domain/port/core"
	"github.com/dropme/rvm-backend/internal/domain/port/persistence"
	"github.com/dropme/rvm-backend/internal/infrastructure/adapter/model"
)

// DepositRepository implements the deposit repository port using GORM
type DepositRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewDepositRepository creates a new DepositRepository instance
func NewDepositRepository(db *gorm.DB, logger coreport.Logger) *DepositRepository {
	return &DepositRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func depositModelToEntity(m *model.Deposit) *entity.Deposit {
	return &entity.Deposit{
		ID:           m.ID,
		Reference:    m.Reference,
		UserID:       m.UserID,
		MaterialID:   m.MaterialID,
		MaterialName: m.Material.Name,
		MachineID:    m.MachineID,
		MachineRef:   m.Machine.MachineID,
		WeightGrams:  m.WeightGrams,
		PointsEarned: m.PointsEarned,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *DepositRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}
	if r.errorClassifier.IsLockError(err) {
		return fmt.Errorf("%w: %s", errs.ErrTransactionConflict, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new deposit row
func (r *DepositRepository) Create(ctx context.Context, deposit *entity.Deposit) error {
	depositModel := model.Deposit{
		Reference:    deposit.Reference,
		UserID:       deposit.UserID,
		MaterialID:   deposit.MaterialID,
		MachineID:    deposit.MachineID,
		WeightGrams:  deposit.WeightGrams,
		PointsEarned: deposit.PointsEarned,
		Notes:        deposit.Notes,
		CreatedAt:    deposit.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&depositModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Deposit reference collision", map[string]any{
				"user_id":   deposit.UserID,
				"reference": deposit.Reference,
			})
			return fmt.Errorf("%w: reference %s", errs.ErrDuplicateDeposit, deposit.Reference)
		}
		return r.handleDatabaseError("creating deposit", result.Error, deposit.UserID)
	}

	deposit.ID = depositModel.ID
	return nil
}

// ListByUser returns one page of the user's deposits, newest first, plus
// the total count matching the filter
func (r *DepositRepository) ListByUser(ctx context.Context, userID uint64, filter persistence.DepositFilter) ([]*entity.Deposit, int64, error) {
	// fresh chain per query; gorm statements are not safely reusable
	applyFilter := func(q *gorm.DB) *gorm.DB {
		q = q.Where("deposits.user_id = ?", userID)
		if filter.MaterialName != "" {
			q = q.Joins("JOIN materials ON materials.id = deposits.material_id").
				Where("materials.name = ?", filter.MaterialName)
		}
		return q
	}

	var total int64
	if err := applyFilter(r.db.WithContext(ctx).Model(&model.Deposit{})).Count(&total).Error; err != nil {
		return nil, 0, r.handleDatabaseError("counting deposits", err, userID)
	}

	var depositModels []model.Deposit
	result := applyFilter(r.db.WithContext(ctx).Model(&model.Deposit{})).
		Preload("Material").
		Preload("Machine").
		Order("deposits.created_at desc, deposits.id desc").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&depositModels)

	if result.Error != nil {
		return nil, 0, r.handleDatabaseError("listing deposits", result.Error, userID)
	}

	deposits := make([]*entity.Deposit, len(depositModels))
	for i := range depositModels {
		deposits[i] = depositModelToEntity(&depositModels[i])
	}
	return deposits, total, nil
}

// CountMatchingSince counts identical submissions by the user at or after
// the given time
func (r *DepositRepository) CountMatchingSince(ctx context.Context, userID, materialID, machineID uint64, weightGrams int64, since time.Time) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Deposit{}).
		Where("user_id = ? AND material_id = ? AND machine_id = ? AND weight_grams = ? AND created_at >= ?",
			userID, materialID, machineID, weightGrams, since).
		Count(&count)

	if result.Error != nil {
		return 0, r.handleDatabaseError("counting matching deposits", result.Error, userID)
	}
	return count, nil
}

// CountByUserSince counts all deposits by the user at or after the given time
func (r *DepositRepository) CountByUserSince(ctx context.Context, userID uint64, since time.Time) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Deposit{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count)

	if result.Error != nil {
		return 0, r.handleDatabaseError("counting user deposits", result.Error, userID)
	}
	return count, nil
}

// SystemTotals aggregates every deposit on the platform
func (r *DepositRepository) SystemTotals(ctx context.Context) (*persistence.SystemTotals, error) {
	var totals persistence.SystemTotals
	result := r.db.WithContext(ctx).Model(&model.Deposit{}).
		Select("COALESCE(SUM(weight_grams), 0) AS total_weight_grams, " +
			"COALESCE(SUM(points_earned), 0) AS total_points, " +
			"COUNT(*) AS deposit_count").
		Scan(&totals)

	if result.Error != nil {
		return nil, r.handleDatabaseError("aggregating system totals", result.Error, 0)
	}
	return &totals, nil
}

// TotalsByMaterial aggregates one user's deposits per material, heaviest first
func (r *DepositRepository) TotalsByMaterial(ctx context.Context, userID uint64) ([]persistence.MaterialTotals, error) {
	var totals []persistence.MaterialTotals
	result := r.db.WithContext(ctx).Model(&model.Deposit{}).
		Select("materials.name AS material_name, "+
			"COALESCE(SUM(deposits.weight_grams), 0) AS total_weight_grams, "+
			"COALESCE(SUM(deposits.points_earned), 0) AS total_points, "+
			"COUNT(*) AS deposit_count").
		Joins("JOIN materials ON materials.id = deposits.material_id").
		Where("deposits.user_id = ?", userID).
		Group("materials.name").
		Order("total_weight_grams desc").
		Scan(&totals)

	if result.Error != nil {
		return nil, r.handleDatabaseError("aggregating material totals", result.Error, userID)
	}
	return totals, nil
}

// TopMaterials aggregates all deposits per material, heaviest first
func (r *DepositRepository) TopMaterials(ctx context.Context, limit int) ([]persistence.MaterialTotals, error) {
	var totals []persistence.MaterialTotals
	result := r.db.WithContext(ctx).Model(&model.Deposit{}).
		Select("materials.name AS material_name, " +
			"COALESCE(SUM(deposits.weight_grams), 0) AS total_weight_grams, " +
			"COALESCE(SUM(deposits.points_earned), 0) AS total_points, " +
			"COUNT(*) AS deposit_count").
		Joins("JOIN materials ON materials.id = deposits.material_id").
		Group("materials.name").
		Order("total_weight_grams desc").
		Limit(limit).
		Scan(&totals)

	if result.Error != nil {
		return nil, r.handleDatabaseError("aggregating top materials", result.Error, 0)
	}
	return totals, nil
}

// TopMachines aggregates all deposits per machine, busiest first
func (r *DepositRepository) TopMachines(ctx context.Context, limit int) ([]persistence.MachineTotals, error) {
	var totals []persistence.MachineTotals
	result := r.db.WithContext(ctx).Model(&model.Deposit{}).
		Select("machines.machine_id AS machine_ref, " +
			"machines.location AS location, " +
			"COALESCE(SUM(deposits.weight_grams), 0) AS total_weight_grams, " +
			"COUNT(*) AS deposit_count").
		Joins("JOIN machines ON machines.id = deposits.machine_id").
		Group("machines.machine_id, machines.location").
		Order("deposit_count desc").
		Limit(limit).
		Scan(&totals)

	if result.Error != nil {
		return nil, r.handleDatabaseError("aggregating top machines", result.Error, 0)
	}
	return totals, nil
}

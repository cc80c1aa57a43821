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

// MaterialRepository implements the material repository port using GORM
type MaterialRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewMaterialRepository creates a new MaterialRepository instance
func NewMaterialRepository(db *gorm.DB, logger coreport.Logger) *MaterialRepository {
	return &MaterialRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func materialModelToEntity(m *model.Material) *entity.Material {
	return &entity.Material{
		ID:          m.ID,
		Name:        m.Name,
		PointsPerKg: m.PointsPerKg,
		Description: m.Description,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *MaterialRepository) handleDatabaseError(operation string, err error, name string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Material not found", map[string]any{
			"material": name,
		})
		return fmt.Errorf("%w: %q", errs.ErrUnknownMaterial, name)
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"material": name,
		"error":    err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByName retrieves an active material by its exact name
func (r *MaterialRepository) GetByName(ctx context.Context, name string) (*entity.Material, error) {
	var materialModel model.Material
	result := r.db.WithContext(ctx).
		Where("name = ? AND active = ?", name, true).
		First(&materialModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting material", result.Error, name)
	}

	return materialModelToEntity(&materialModel), nil
}

// List returns all active materials ordered by name
func (r *MaterialRepository) List(ctx context.Context) ([]*entity.Material, error) {
	var materialModels []model.Material
	result := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name asc").
		Find(&materialModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing materials", result.Error, "")
	}

	materials := make([]*entity.Material, len(materialModels))
	for i := range materialModels {
		materials[i] = materialModelToEntity(&materialModels[i])
	}
	return materials, nil
}

// Create persists a new material
func (r *MaterialRepository) Create(ctx context.Context, material *entity.Material) error {
	materialModel := model.Material{
		Name:        material.Name,
		PointsPerKg: material.PointsPerKg,
		Description: material.Description,
		Active:      material.Active,
		CreatedAt:   material.CreatedAt,
		UpdatedAt:   material.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&materialModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Material already exists", map[string]any{
				"material": material.Name,
			})
			return fmt.Errorf("%w: material %q already exists", errs.ErrInvalidRequest, material.Name)
		}
		return r.handleDatabaseError("creating material", result.Error, material.Name)
	}

	material.ID = materialModel.ID

	r.logger.Info("Material created", map[string]any{
		"material": material.Name,
		"rate":     material.Rate(),
	})
	return nil
}

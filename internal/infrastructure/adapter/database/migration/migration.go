package migration

import (
	"context"
	"errors"

	"gorm.io/gorm"

	coreport "github.com/dropme/rvm-backend/internal/domain/port/core"
	"github.com/dropme/rvm-backend/internal/infrastructure/adapter/model"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.0.0"
)

// Migrator manages database schema migrations
type Migrator struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewMigrator creates a new migrator
func NewMigrator(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *Migrator {
	return &Migrator{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll brings the schema up to the current version
func (m *Migrator) MigrateAll() error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(context.Background())
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if err := m.autoMigrateModels(); err != nil {
		return err
	}

	if err := m.recordVersion(CurrentSchemaVersion, "auto-migrated schemas"); err != nil {
		return err
	}

	m.logger.Info("Database migrations completed", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// autoMigrateModels migrates all application models
func (m *Migrator) autoMigrateModels() error {
	models := []interface{}{
		&model.Material{},
		&model.Machine{},
		&model.Deposit{},
		&model.UserStatistics{},
	}

	for _, mdl := range models {
		if err := m.db.AutoMigrate(mdl); err != nil {
			m.logger.Error("Failed to migrate model", map[string]any{
				"error": err.Error(),
			})
			return err
		}
	}
	return nil
}

// GetCurrentVersion returns the most recently applied schema version
func (m *Migrator) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}
	return version.Version, nil
}

// recordVersion stores an applied migration version
func (m *Migrator) recordVersion(version, details string) error {
	record := model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}
	return m.db.Create(&record).Error
}

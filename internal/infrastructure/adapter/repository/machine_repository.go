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

// MachineRepository implements the machine repository port using GORM
type MachineRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewMachineRepository creates a new MachineRepository instance
func NewMachineRepository(db *gorm.DB, logger coreport.Logger) *MachineRepository {
	return &MachineRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func machineModelToEntity(m *model.Machine) *entity.Machine {
	return &entity.Machine{
		ID:        m.ID,
		MachineID: m.MachineID,
		Location:  m.Location,
		Status:    entity.MachineStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *MachineRepository) handleDatabaseError(operation string, err error, machineID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Machine not found", map[string]any{
			"machine_id": machineID,
		})
		return fmt.Errorf("%w: %q", errs.ErrUnknownMachine, machineID)
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"machine_id": machineID,
		"error":      err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByMachineID retrieves a machine by its public identifier, whatever
// its status. Availability is the caller's decision.
func (r *MachineRepository) GetByMachineID(ctx context.Context, machineID string) (*entity.Machine, error) {
	var machineModel model.Machine
	result := r.db.WithContext(ctx).
		Where("machine_id = ?", machineID).
		First(&machineModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting machine", result.Error, machineID)
	}

	return machineModelToEntity(&machineModel), nil
}

// List returns all active machines ordered by their public identifier
func (r *MachineRepository) List(ctx context.Context) ([]*entity.Machine, error) {
	var machineModels []model.Machine
	result := r.db.WithContext(ctx).
		Where("status = ?", string(entity.MachineActive)).
		Order("machine_id asc").
		Find(&machineModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing machines", result.Error, "")
	}

	machines := make([]*entity.Machine, len(machineModels))
	for i := range machineModels {
		machines[i] = machineModelToEntity(&machineModels[i])
	}
	return machines, nil
}

// Create persists a new machine
func (r *MachineRepository) Create(ctx context.Context, machine *entity.Machine) error {
	machineModel := model.Machine{
		MachineID: machine.MachineID,
		Location:  machine.Location,
		Status:    string(machine.Status),
		CreatedAt: machine.CreatedAt,
		UpdatedAt: machine.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&machineModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Machine already exists", map[string]any{
				"machine_id": machine.MachineID,
			})
			return fmt.Errorf("%w: machine %q already exists", errs.ErrInvalidRequest, machine.MachineID)
		}
		return r.handleDatabaseError("creating machine", result.Error, machine.MachineID)
	}

	machine.ID = machineModel.ID

	r.logger.Info("Machine created", map[string]any{
		"machine_id": machine.MachineID,
		"location":   machine.Location,
	})
	return nil
}

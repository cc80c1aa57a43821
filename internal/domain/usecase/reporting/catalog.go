package reporting

import (
	"context"

	"github.com/dropme/rvm-backend/internal/domain/entity"
	coreport "github.com/dropme/rvm-backend/internal/domain/port/core"
	"github.com/dropme/rvm-backend/internal/domain/port/persistence"
)

// CatalogService lists the reference data clients need to build a
// submission: accepted materials with their rates, and active machines.
type CatalogService struct {
	materialRepo persistence.MaterialRepository
	machineRepo  persistence.MachineRepository
	logger       coreport.Logger
}

// NewCatalogService creates the catalog use case over the given repositories
func NewCatalogService(
	materialRepo persistence.MaterialRepository,
	machineRepo persistence.MachineRepository,
	logger coreport.Logger,
) *CatalogService {
	return &CatalogService{
		materialRepo: materialRepo,
		machineRepo:  machineRepo,
		logger:       logger,
	}
}

// ListMaterials implements usecase.CatalogUseCase
func (s *CatalogService) ListMaterials(ctx context.Context) ([]*entity.Material, error) {
	materials, err := s.materialRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list materials", map[string]any{"error": err.Error()})
		return nil, err
	}
	return materials, nil
}

// ListMachines implements usecase.CatalogUseCase
func (s *CatalogService) ListMachines(ctx context.Context) ([]*entity.Machine, error) {
	machines, err := s.machineRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list machines", map[string]any{"error": err.Error()})
		return nil, err
	}
	return machines, nil
}

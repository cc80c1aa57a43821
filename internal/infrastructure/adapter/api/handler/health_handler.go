package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/dropme/rvm-backend/internal/domain/port/core"
	"github.com/dropme/rvm-backend/internal/domain/port/usecase"
	"github.com/dropme/rvm-backend/internal/infrastructure/adapter/api/dto"
)

// Version is the service version reported by the health endpoint
const Version = "1.0.0"

// Pinger verifies a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service liveness, database reachability and
// reference data availability
type HealthHandler struct {
	db      Pinger
	catalog usecase.CatalogUseCase
	logger  coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db Pinger, catalog usecase.CatalogUseCase, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		db:      db,
		catalog: catalog,
		logger:  logger,
	}
}

// Health handles the GET /api/health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	status := http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("Health check failed", map[string]any{
			"error": err.Error(),
		})
		dbStatus = "down"
		status = http.StatusServiceUnavailable
	}

	var materialCount, machineCount int
	if status == http.StatusOK {
		if materials, err := h.catalog.ListMaterials(ctx); err == nil {
			materialCount = len(materials)
		}
		if machines, err := h.catalog.ListMachines(ctx); err == nil {
			machineCount = len(machines)
		}
	}

	c.JSON(status, dto.HealthResponse{
		Status:    statusLabel(status),
		Database:  dbStatus,
		Materials: materialCount,
		Machines:  machineCount,
		Version:   Version,
	})
}

func statusLabel(status int) string {
	if status == http.StatusOK {
		return "ok"
	}
	return "degraded"
}

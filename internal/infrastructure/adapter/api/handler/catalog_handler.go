package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/dropme/rvm-backend/internal/domain/error"
	coreport "github.com/dropme/rvm-backend/internal/domain/port/core"
	"github.com/dropme/rvm-backend/internal/domain/port/usecase"
	"github.com/dropme/rvm-backend/internal/infrastructure/adapter/api/dto"
)

// CatalogHandler serves the reference-data listings
type CatalogHandler struct {
	catalogService usecase.CatalogUseCase
	logger         coreport.Logger
}

// NewCatalogHandler creates a new catalog handler instance
func NewCatalogHandler(catalogService usecase.CatalogUseCase, logger coreport.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListMaterials handles the GET /api/materials endpoint
func (h *CatalogHandler) ListMaterials(c *gin.Context) {
	materials, err := h.catalogService.ListMaterials(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	response := make([]dto.MaterialResponse, len(materials))
	for i, m := range materials {
		response[i] = dto.MaterialResponse{
			Name:        m.Name,
			PointsPerKg: m.Rate(),
			Description: m.Description,
		}
	}
	c.JSON(http.StatusOK, response)
}

// ListMachines handles the GET /api/machines endpoint
func (h *CatalogHandler) ListMachines(c *gin.Context) {
	machines, err := h.catalogService.ListMachines(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	response := make([]dto.MachineResponse, len(machines))
	for i, m := range machines {
		response[i] = dto.MachineResponse{
			MachineID: m.MachineID,
			Location:  m.Location,
			Status:    string(m.Status),
		}
	}
	c.JSON(http.StatusOK, response)
}

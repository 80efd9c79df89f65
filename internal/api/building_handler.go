package api

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Kondaswamy12/Realestate/internal/entity"
	"github.com/Kondaswamy12/Realestate/internal/service"
)

type BuildingHandler struct {
	buildingService service.BuildingService
}

// NewBuildingHandler creates a new instance of BuildingHandler.
func NewBuildingHandler(buildingService service.BuildingService) *BuildingHandler {
	return &BuildingHandler{buildingService: buildingService}
}

// RegisterRoutes mounts the building endpoint group.
func (h *BuildingHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/buildings", h.GetAllBuildings)
	e.POST("/api/buildings", h.CreateBuilding)
	e.PUT("/api/buildings/:id", h.UpdateBuilding)
	e.DELETE("/api/buildings/:id", h.DeleteBuilding)
}

// GetAllBuildings lists every building --> GET /api/buildings
func (h *BuildingHandler) GetAllBuildings(c echo.Context) error {
	buildings, err := h.buildingService.GetBuildings(c.Request().Context())
	if err != nil {
		return serviceError(c, err, "")
	}

	return c.JSON(200, buildings)
}

// CreateBuilding adds a new building --> POST /api/buildings
// Partial payloads are fine; missing numeric and boolean fields come back
// zero-valued on the created record.
func (h *BuildingHandler) CreateBuilding(c echo.Context) error {
	building := entity.Building{}
	if err := c.Bind(&building); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	createdBuilding, err := h.buildingService.CreateBuilding(c.Request().Context(), &building)
	if err != nil {
		return serviceError(c, err, "")
	}

	return c.JSON(200, createdBuilding)
}

// UpdateBuilding replaces everything but the key --> PUT /api/buildings/:id
func (h *BuildingHandler) UpdateBuilding(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	building := entity.Building{}
	if err := c.Bind(&building); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	if err := h.buildingService.UpdateBuilding(c.Request().Context(), id, &building); err != nil {
		return serviceError(c, err, fmt.Sprintf("Building with ID '%d' not found!", id))
	}

	return c.String(200, fmt.Sprintf("Building '%d' updated successfully!", id))
}

// DeleteBuilding removes a building by ID --> DELETE /api/buildings/:id
func (h *BuildingHandler) DeleteBuilding(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.buildingService.DeleteBuilding(c.Request().Context(), id); err != nil {
		return serviceError(c, err, fmt.Sprintf("Building with ID '%d' not found!", id))
	}

	return c.String(200, fmt.Sprintf("Building with ID '%d' deleted successfully!", id))
}

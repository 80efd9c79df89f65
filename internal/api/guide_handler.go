package api

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Kondaswamy12/Realestate/internal/entity"
	"github.com/Kondaswamy12/Realestate/internal/service"
)

type GuideHandler struct {
	guideService service.GuideService
}

// NewGuideHandler creates a new instance of GuideHandler.
func NewGuideHandler(guideService service.GuideService) *GuideHandler {
	return &GuideHandler{guideService: guideService}
}

// RegisterRoutes mounts the guide endpoint group. The doubled "guides"
// segment on create/update is part of the published API and kept as is.
func (h *GuideHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/guides", h.GetAllGuides)
	e.POST("/api/guides/guides", h.CreateGuide)
	e.PUT("/api/guides/guides/:id", h.UpdateGuide)
	e.DELETE("/api/guides/:id", h.DeleteGuide)
}

// GetAllGuides lists every guide --> GET /api/guides
func (h *GuideHandler) GetAllGuides(c echo.Context) error {
	guides, err := h.guideService.GetGuides(c.Request().Context())
	if err != nil {
		return serviceError(c, err, "")
	}

	return c.JSON(200, guides)
}

// CreateGuide adds a new guide --> POST /api/guides/guides
func (h *GuideHandler) CreateGuide(c echo.Context) error {
	guide := entity.Guide{}
	if err := c.Bind(&guide); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	createdGuide, err := h.guideService.CreateGuide(c.Request().Context(), &guide)
	if err != nil {
		return serviceError(c, err, "")
	}

	return c.JSON(200, createdGuide)
}

// UpdateGuide replaces everything but the key --> PUT /api/guides/guides/:id
func (h *GuideHandler) UpdateGuide(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	guide := entity.Guide{}
	if err := c.Bind(&guide); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	if err := h.guideService.UpdateGuide(c.Request().Context(), id, &guide); err != nil {
		return serviceError(c, err, fmt.Sprintf("Guide with ID '%d' not found!", id))
	}

	return c.String(200, fmt.Sprintf("Guide '%d' updated successfully!", id))
}

// DeleteGuide removes a guide by ID --> DELETE /api/guides/:id
func (h *GuideHandler) DeleteGuide(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.guideService.DeleteGuide(c.Request().Context(), id); err != nil {
		return serviceError(c, err, fmt.Sprintf("Guide with ID '%d' not found!", id))
	}

	return c.String(200, fmt.Sprintf("Guide with ID '%d' deleted successfully!", id))
}

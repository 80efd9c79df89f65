package api

import "github.com/labstack/echo/v4"

// RealEstateHandler is the aggregator facade: read access to all three
// entities plus the full user surface, reachable under the bare /api prefix.
// It owns no logic of its own; every route delegates to the per-entity
// handlers so the operation semantics stay single-sourced.
type RealEstateHandler struct {
	userHandler     *UserHandler
	guideHandler    *GuideHandler
	buildingHandler *BuildingHandler
}

// NewRealEstateHandler creates a new instance of RealEstateHandler.
func NewRealEstateHandler(userHandler *UserHandler, guideHandler *GuideHandler, buildingHandler *BuildingHandler) *RealEstateHandler {
	return &RealEstateHandler{
		userHandler:     userHandler,
		guideHandler:    guideHandler,
		buildingHandler: buildingHandler,
	}
}

// RegisterRoutes mounts the aggregator endpoint group. The paths shared with
// the per-entity groups resolve to the exact same handler funcs, so
// registering both groups on one router is harmless.
func (h *RealEstateHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/test", h.Test)

	e.GET("/api/users", h.userHandler.GetAllUsers)
	e.GET("/api/users/:username", h.userHandler.GetUserByUsername)
	e.POST("/api/users/register", h.userHandler.Register)
	e.POST("/api/users/login", h.userHandler.Login)
	e.PUT("/api/users/:username", h.userHandler.UpdateUser)
	e.DELETE("/api/users/:username", h.userHandler.DeleteUser)

	e.GET("/api/guides", h.guideHandler.GetAllGuides)
	e.GET("/api/buildings", h.buildingHandler.GetAllBuildings)
}

// Test is a trivial liveness probe --> GET /api/test
func (h *RealEstateHandler) Test(c echo.Context) error {
	return c.String(200, "test")
}

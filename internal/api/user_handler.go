package api

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/Kondaswamy12/Realestate/internal/entity"
	"github.com/Kondaswamy12/Realestate/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes mounts the user endpoint group.
func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/users", h.GetAllUsers)
	e.GET("/api/users/:username", h.GetUserByUsername)
	e.POST("/api/users/register", h.Register)
	e.POST("/api/users/login", h.Login)
	e.PUT("/api/users/:username", h.UpdateUser)
	e.DELETE("/api/users/:username", h.DeleteUser)
}

// Register creates a new user --> POST /api/users/register
func (h *UserHandler) Register(c echo.Context) error {
	user := entity.User{}
	if err := c.Bind(&user); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	createdUser, err := h.userService.Register(c.Request().Context(), &user)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateKey) {
			return c.String(409, fmt.Sprintf("User '%s' already exists!", user.Username))
		}
		return serviceError(c, err, "")
	}

	return c.JSON(200, createdUser)
}

// Login checks a username/password pair --> POST /api/users/login
func (h *UserHandler) Login(c echo.Context) error {
	login := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{}
	if err := c.Bind(&login); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	err := h.userService.Login(c.Request().Context(), login.Username, login.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.String(401, "Invalid username or password!")
		}
		return serviceError(c, err, "")
	}

	return c.String(200, "Login successful!")
}

// GetAllUsers lists every user --> GET /api/users
func (h *UserHandler) GetAllUsers(c echo.Context) error {
	users, err := h.userService.GetUsers(c.Request().Context())
	if err != nil {
		return serviceError(c, err, "")
	}

	return c.JSON(200, users)
}

// GetUserByUsername retrieves a single user --> GET /api/users/:username
func (h *UserHandler) GetUserByUsername(c echo.Context) error {
	username := c.Param("username")

	user, err := h.userService.GetUserByUsername(c.Request().Context(), username)
	if err != nil {
		return serviceError(c, err, fmt.Sprintf("User '%s' not found!", username))
	}

	return c.JSON(200, user)
}

// UpdateUser replaces everything but the username --> PUT /api/users/:username
func (h *UserHandler) UpdateUser(c echo.Context) error {
	username := c.Param("username")

	user := entity.User{}
	if err := c.Bind(&user); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	if err := h.userService.UpdateUser(c.Request().Context(), username, &user); err != nil {
		return serviceError(c, err, fmt.Sprintf("User '%s' not found!", username))
	}

	return c.String(200, fmt.Sprintf("User '%s' updated successfully!", username))
}

// DeleteUser removes a user by username --> DELETE /api/users/:username
func (h *UserHandler) DeleteUser(c echo.Context) error {
	username := c.Param("username")

	if err := h.userService.DeleteUser(c.Request().Context(), username); err != nil {
		return serviceError(c, err, fmt.Sprintf("User '%s' not found!", username))
	}

	return c.String(200, fmt.Sprintf("User '%s' deleted successfully!", username))
}

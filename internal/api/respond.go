package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/Kondaswamy12/Realestate/internal/service"
)

// serviceError is the single place where service failures become HTTP
// responses. Not-found carries the caller-facing message text; anything else
// surfaces as a 500 with the fault's message.
func serviceError(c echo.Context, err error, notFoundMsg string) error {
	if errors.Is(err, service.ErrNotFound) {
		return c.String(404, notFoundMsg)
	}
	return c.String(500, "Error: "+err.Error())
}

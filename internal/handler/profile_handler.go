package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskhive/internal/middleware"
)

// ProfileHandler serves the authenticated user's own record.
type ProfileHandler struct{}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// View godoc
// @Summary View the authenticated user's profile
// @Tags profile
// @Produce json
// @Success 200 {object} model.User
// @Failure 400 {object} map[string]string
// @Router /profile/view [get]
func (h *ProfileHandler) View(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "identity not resolved")
	}
	return c.JSON(http.StatusOK, user)
}

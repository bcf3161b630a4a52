package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "taskhive/internal/errors"
	"taskhive/internal/service"
)

// ProjectHandler bundles project HTTP handlers.
type ProjectHandler struct {
	svc service.ProjectService
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(svc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// CreateProjectRequest represents a project creation body.
type CreateProjectRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	DueDate     time.Time  `json:"dueDate"`
}

// AddMemberRequest represents a team membership change.
type AddMemberRequest struct {
	UserID uint `json:"user_id" validate:"required"`
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce plain
// @Param request body CreateProjectRequest true "Project data"
// @Success 200 {string} string "Project Added"
// @Failure 400 {string} string
// @Router /addProject [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Error saving the project: invalid request body")
	}

	_, err := h.svc.Create(c.Request().Context(), service.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return c.String(http.StatusBadRequest, "Error saving the project: "+err.Error())
	}

	return c.String(http.StatusOK, "Project Added")
}

// Get godoc
// @Summary Get project by id
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} model.Project
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	project, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, project)
}

// List godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} model.Project
// @Router /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.svc.List(c.Request().Context())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, projects)
}

// AddMember godoc
// @Summary Add a user to a project's team
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body AddMemberRequest true "Member data"
// @Success 200 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id}/members [post]
func (h *ProjectHandler) AddMember(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req AddMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.svc.AddMember(c.Request().Context(), uint(id), req.UserID)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, project)
}

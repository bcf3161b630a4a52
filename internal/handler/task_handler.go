package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "taskhive/internal/errors"
	"taskhive/internal/middleware"
	"taskhive/internal/model"
	"taskhive/internal/service"
)

// TaskHandler bundles task HTTP handlers.
type TaskHandler struct {
	svc service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(svc service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// CreateTaskRequest represents a task creation body.
type CreateTaskRequest struct {
	Title          string    `json:"title" validate:"required"`
	Description    string    `json:"description" validate:"required"`
	DueDate        time.Time `json:"dueDate" validate:"required"`
	ProjectID      uint      `json:"project_id" validate:"required"`
	AssignedUserID *uint     `json:"assigned_user_id,omitempty"`
	Priority       string    `json:"priority,omitempty"`
	Status         string    `json:"status,omitempty"`
}

// UpdateTaskStatusRequest represents a task status change.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Create godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body CreateTaskRequest true "Task data"
// @Success 201 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.svc.Create(c.Request().Context(), service.CreateTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		DueDate:        req.DueDate,
		ProjectID:      req.ProjectID,
		AssignedUserID: req.AssignedUserID,
		Priority:       model.TaskPriority(req.Priority),
		Status:         model.TaskStatus(req.Status),
	})
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, task)
}

// Get godoc
// @Summary Get task by id
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} model.Task
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	task, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, task)
}

// ListByProject godoc
// @Summary List tasks for a project
// @Tags tasks
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {array} model.Task
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id}/tasks [get]
func (h *TaskHandler) ListByProject(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	tasks, err := h.svc.ListByProject(c.Request().Context(), uint(id))
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, tasks)
}

// MyTasks godoc
// @Summary List tasks assigned to the authenticated user
// @Tags tasks
// @Produce json
// @Success 200 {array} model.Task
// @Router /me/tasks [get]
func (h *TaskHandler) MyTasks(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "identity not resolved")
	}

	tasks, err := h.svc.ListByAssignee(c.Request().Context(), user.ID)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, tasks)
}

// UpdateStatus godoc
// @Summary Update a task's status
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body UpdateTaskStatusRequest true "New status"
// @Success 200 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{id}/status [patch]
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.svc.UpdateStatus(c.Request().Context(), uint(id), model.TaskStatus(req.Status))
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, task)
}

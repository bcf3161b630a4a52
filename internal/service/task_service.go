package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	apperrors "taskhive/internal/errors"
	"taskhive/internal/model"
	"taskhive/internal/repository"
)

// CreateTaskInput carries the fields accepted when creating a task.
type CreateTaskInput struct {
	Title          string
	Description    string
	DueDate        time.Time
	ProjectID      uint
	AssignedUserID *uint
	Priority       model.TaskPriority
	Status         model.TaskStatus
}

// TaskService exposes task operations.
type TaskService interface {
	Create(ctx context.Context, in CreateTaskInput) (*model.Task, error)
	Get(ctx context.Context, id uint) (*model.Task, error)
	ListByProject(ctx context.Context, projectID uint) ([]model.Task, error)
	ListByAssignee(ctx context.Context, userID uint) ([]model.Task, error)
	UpdateStatus(ctx context.Context, id uint, status model.TaskStatus) (*model.Task, error)
}

type taskService struct {
	tasks    repository.TaskRepository
	projects repository.ProjectRepository
	users    repository.UserRepository
}

// NewTaskService builds a TaskService with repositories.
func NewTaskService(tasks repository.TaskRepository, projects repository.ProjectRepository, users repository.UserRepository) TaskService {
	return &taskService{tasks: tasks, projects: projects, users: users}
}

// Create validates and persists a task. Priority defaults to medium and
// status to to-do. The referenced project must exist; an assignee, if given,
// must resolve to an existing user.
func (s *taskService) Create(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	if err := validateTask(in); err != nil {
		return nil, err
	}

	if _, err := s.projects.FindByID(ctx, in.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}

	if in.AssignedUserID != nil {
		if _, err := s.users.FindByID(ctx, *in.AssignedUserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, err
		}
	}

	priority := in.Priority
	if priority == "" {
		priority = model.TaskPriorityMedium
	}
	status := in.Status
	if status == "" {
		status = model.TaskStatusToDo
	}

	task := &model.Task{
		Title:          in.Title,
		Description:    in.Description,
		DueDate:        in.DueDate,
		ProjectID:      in.ProjectID,
		AssignedUserID: in.AssignedUserID,
		Priority:       priority,
		Status:         status,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return task, nil
}

func (s *taskService) Get(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) ListByProject(ctx context.Context, projectID uint) ([]model.Task, error) {
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *taskService) ListByAssignee(ctx context.Context, userID uint) ([]model.Task, error) {
	return s.tasks.ListByAssignee(ctx, userID)
}

// UpdateStatus moves a task to any status in the closed enum; no workflow
// restrictions apply between states.
func (s *taskService) UpdateStatus(ctx context.Context, id uint, status model.TaskStatus) (*model.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown task status %q", apperrors.ErrValidation, status)
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	if err := s.tasks.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update task status: %w", err)
	}
	task.Status = status

	return task, nil
}

func validateTask(in CreateTaskInput) error {
	if n := utf8.RuneCountInString(in.Title); n < 3 || n > 200 {
		return fmt.Errorf("%w: task title must be 3-200 characters", apperrors.ErrValidation)
	}
	if in.Description == "" {
		return fmt.Errorf("%w: task description is required", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(in.Description) > 600 {
		return fmt.Errorf("%w: task description must be at most 600 characters", apperrors.ErrValidation)
	}
	if in.DueDate.IsZero() {
		return fmt.Errorf("%w: task due date is required", apperrors.ErrValidation)
	}
	if in.ProjectID == 0 {
		return fmt.Errorf("%w: task project is required", apperrors.ErrValidation)
	}
	if in.Priority != "" && !in.Priority.Valid() {
		return fmt.Errorf("%w: unknown task priority %q", apperrors.ErrValidation, in.Priority)
	}
	if in.Status != "" && !in.Status.Valid() {
		return fmt.Errorf("%w: unknown task status %q", apperrors.ErrValidation, in.Status)
	}
	return nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"taskhive/internal/cache"
	apperrors "taskhive/internal/errors"
	"taskhive/internal/model"
	"taskhive/internal/repository"
)

const projectCacheTTL = 5 * time.Minute

// CreateProjectInput carries the fields accepted when creating a project.
type CreateProjectInput struct {
	Name        string
	Description string
	StartDate   *time.Time
	DueDate     time.Time
}

// ProjectService exposes project operations.
type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*model.Project, error)
	Get(ctx context.Context, id uint) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	AddMember(ctx context.Context, projectID, userID uint) (*model.Project, error)
}

type projectService struct {
	projects repository.ProjectRepository
	users    repository.UserRepository
	cache    *cache.Client
}

// NewProjectService builds a ProjectService with repositories and cache.
func NewProjectService(projects repository.ProjectRepository, users repository.UserRepository, cache *cache.Client) ProjectService {
	return &projectService{projects: projects, users: users, cache: cache}
}

func (s *projectService) cacheKey(id uint) string {
	return fmt.Sprintf("project:%d", id)
}

// Create validates and persists a project. StartDate defaults to now and
// Status to open.
func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	if err := validateProject(in); err != nil {
		return nil, err
	}

	start := time.Now()
	if in.StartDate != nil {
		start = *in.StartDate
	}

	project := &model.Project{
		Name:        in.Name,
		Description: in.Description,
		StartDate:   start,
		DueDate:     in.DueDate,
		Status:      model.ProjectStatusOpen,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	return project, nil
}

func (s *projectService) Get(ctx context.Context, id uint) (*model.Project, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Project
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(project); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, projectCacheTTL)
	}
	return project, nil
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	return s.projects.List(ctx)
}

// AddMember attaches an existing user to a project's team.
func (s *projectService) AddMember(ctx context.Context, projectID, userID uint) (*model.Project, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if err := s.projects.AddMember(ctx, project, user); err != nil {
		return nil, fmt.Errorf("add member: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(projectID))

	return project, nil
}

func validateProject(in CreateProjectInput) error {
	if in.Name == "" {
		return fmt.Errorf("%w: project name is required", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(in.Name) > 100 {
		return fmt.Errorf("%w: project name must be at most 100 characters", apperrors.ErrValidation)
	}
	if in.Description == "" {
		return fmt.Errorf("%w: project description is required", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(in.Description) > 700 {
		return fmt.Errorf("%w: project description must be at most 700 characters", apperrors.ErrValidation)
	}
	if in.DueDate.IsZero() {
		return fmt.Errorf("%w: project due date is required", apperrors.ErrValidation)
	}
	return nil
}

package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taskhive/internal/model"
	"taskhive/internal/service"
)

// MockProjectRepository is a mock implementation of repository.ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uint) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) AddMember(ctx context.Context, project *model.Project, user *model.User) error {
	args := m.Called(ctx, project, user)
	return args.Error(0)
}

func TestProjectHandler_Create(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(*MockProjectRepository)
		expectedCode int
		expectedBody string
	}{
		{
			name: "successful create",
			body: `{"name":"Apollo","description":"Launch prep","dueDate":"2026-12-01T00:00:00Z"}`,
			setupMock: func(m *MockProjectRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "Project Added",
		},
		{
			name:         "missing due date",
			body:         `{"name":"Apollo","description":"Launch prep"}`,
			setupMock:    func(m *MockProjectRepository) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Error saving the project: ",
		},
		{
			name:         "missing description",
			body:         `{"name":"Apollo","dueDate":"2026-12-01T00:00:00Z"}`,
			setupMock:    func(m *MockProjectRepository) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Error saving the project: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProjectRepository)
			tt.setupMock(mockRepo)

			svc := service.NewProjectService(mockRepo, new(MockUserRepository), nil)
			e := echo.New()
			e.POST("/addProject", NewProjectHandler(svc).Create)

			rec := postJSON(e, "/addProject", tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.True(t, strings.HasPrefix(rec.Body.String(), tt.expectedBody))
			mockRepo.AssertExpectations(t)
		})
	}
}

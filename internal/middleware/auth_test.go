package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"taskhive/internal/auth"
	"taskhive/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func newProtectedEcho(tokens *auth.TokenService, users *MockUserRepository) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return echo.NewHTTPError(http.StatusInternalServerError, "no user")
		}
		return c.JSON(http.StatusOK, user)
	}, Authenticate(tokens, users))
	return e
}

func TestAuthenticate(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")

	validToken, err := tokens.Issue(42)
	assert.NoError(t, err)

	tests := []struct {
		name         string
		cookie       *http.Cookie
		setupMock    func(*MockUserRepository)
		expectedCode int
		expectedBody string
	}{
		{
			name:         "missing token",
			cookie:       nil,
			setupMock:    func(m *MockUserRepository) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "missing token",
		},
		{
			name:         "invalid token",
			cookie:       &http.Cookie{Name: TokenCookieName, Value: "garbage"},
			setupMock:    func(m *MockUserRepository) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "invalid token",
		},
		{
			name:   "user deleted after issuance",
			cookie: &http.Cookie{Name: TokenCookieName, Value: validToken},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: "user not found",
		},
		{
			name:   "valid token resolves user",
			cookie: &http.Cookie{Name: TokenCookieName, Value: validToken},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(&model.User{ID: 42, Name: "Alice Doe", Email: "alice@example.com"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "alice@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			tt.setupMock(users)
			e := newProtectedEcho(tokens, users)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			users.AssertExpectations(t)
		})
	}
}

func TestAuthenticate_WrongSecretToken(t *testing.T) {
	issuer := auth.NewTokenService("test-secret")

	// Signed with a different secret; expiry rejection itself is covered in
	// the auth package tests.
	badToken, err := auth.NewTokenService("other-secret").Issue(42)
	assert.NoError(t, err)

	users := new(MockUserRepository)
	e := newProtectedEcho(issuer, users)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: badToken})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestAuthorize(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")

	adminToken, err := tokens.Issue(1)
	assert.NoError(t, err)
	userToken, err := tokens.Issue(2)
	assert.NoError(t, err)

	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Role: model.RoleAdmin}, nil)
	users.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2, Role: model.RoleUser}, nil)

	e := echo.New()
	e.GET("/admin", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, Authenticate(tokens, users), Authorize(model.ActionManageUsers))

	tests := []struct {
		name         string
		token        string
		expectedCode int
	}{
		{"admin allowed", adminToken, http.StatusOK},
		{"non-admin forbidden", userToken, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: tt.token})
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestAuthorize_WithoutIdentityIsServerError(t *testing.T) {
	e := echo.New()
	// Authorize wired without Authenticate: a precondition violation, never a pass.
	e.GET("/broken", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, Authorize(model.ActionManageUsers))

	req := httptest.NewRequest(http.MethodGet, "/broken", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"taskhive/internal/auth"
	"taskhive/internal/config"
	"taskhive/internal/handler"
	"taskhive/internal/middleware"
	"taskhive/internal/model"
	"taskhive/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *auth.TokenService,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	projectHandler *handler.ProjectHandler,
	taskHandler *handler.TaskHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes. /addProject predates the session middleware and stays
	// open for compatibility with existing clients.
	e.POST("/addUser", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.POST("/addProject", projectHandler.Create)

	// Authenticated routes: cookie token -> verified claims -> live user.
	authenticated := e.Group("", middleware.Authenticate(tokens, users))

	authenticated.GET("/profile/view", profileHandler.View)

	authenticated.GET("/projects", projectHandler.List)
	authenticated.GET("/projects/:id", projectHandler.Get)
	authenticated.GET("/projects/:id/tasks", taskHandler.ListByProject)

	authenticated.POST("/tasks", taskHandler.Create)
	authenticated.GET("/tasks/:id", taskHandler.Get)
	authenticated.PATCH("/tasks/:id/status", taskHandler.UpdateStatus)
	authenticated.GET("/me/tasks", taskHandler.MyTasks)

	// Admin routes
	authenticated.POST("/projects/:id/members", projectHandler.AddMember,
		middleware.Authorize(model.ActionManageMembers))

	admin := authenticated.Group("/admin", middleware.Authorize(model.ActionManageUsers))
	admin.GET("/users", userHandler.ListUsers)
	admin.GET("/users/:id", userHandler.GetUser)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

package main

import (
	"log"
	"net/http"
	"os"

	_ "taskhive/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"taskhive/internal/auth"
	"taskhive/internal/cache"
	"taskhive/internal/config"
	"taskhive/internal/db"
	"taskhive/internal/handler"
	"taskhive/internal/model"
	"taskhive/internal/repository"
	"taskhive/internal/router"
	"taskhive/internal/service"
)

// @title Taskhive API
// @version 1.0
// @description Project and task management API with cookie-based JWT sessions.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Task{},
			&model.Project{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Task{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret)
	passwordService := auth.NewPasswordService()

	// Initialize services
	authService := service.NewAuthService(userRepo, passwordService, tokenService)
	projectService := service.NewProjectService(projectRepo, userRepo, cacheClient)
	taskService := service.NewTaskService(taskRepo, projectRepo, userRepo)
	userService := service.NewUserService(userRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler()
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	userHandler := handler.NewUserHandler(userService)

	// Register routes
	router.Register(
		e,
		cfg,
		tokenService,
		userRepo,
		authHandler,
		profileHandler,
		projectHandler,
		taskHandler,
		userHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

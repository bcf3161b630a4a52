package main

import (
	"context"
	"log"
	"time"

	"taskhive/internal/auth"
	"taskhive/internal/config"
	"taskhive/internal/db"
	"taskhive/internal/model"
	"taskhive/internal/repository"
)

// Local development fixtures: an admin, a regular user, a project with both
// as team members and a couple of tasks. The seed is idempotent; rerunning it
// skips records that already exist.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Project{}, &model.Task{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	projects := repository.NewProjectRepository(gormDB)
	tasks := repository.NewTaskRepository(gormDB)
	passwords := auth.NewPasswordService()

	admin := seedUser(ctx, users, passwords, "Admin Istrator", "admin@taskhive.local", "Adm1n!pass", model.RoleAdmin)
	alice := seedUser(ctx, users, passwords, "Alice Doe", "alice@taskhive.local", "Str0ng!Pass", model.RoleUser)

	existing, err := projects.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list projects: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Projects already seeded (%d found), done", len(existing))
		return
	}

	project := &model.Project{
		Name:        "Taskhive onboarding",
		Description: "Internal project used to explore the API during development.",
		StartDate:   time.Now(),
		DueDate:     time.Now().AddDate(0, 1, 0),
		Status:      model.ProjectStatusOpen,
	}
	if err := projects.Create(ctx, project); err != nil {
		log.Fatalf("Failed to create project: %v", err)
	}
	for _, member := range []*model.User{admin, alice} {
		if err := projects.AddMember(ctx, project, member); err != nil {
			log.Fatalf("Failed to add team member: %v", err)
		}
	}

	fixtures := []model.Task{
		{
			Title:          "Write the project brief",
			Description:    "Collect goals and constraints into a one-page brief.",
			DueDate:        time.Now().AddDate(0, 0, 7),
			ProjectID:      project.ID,
			AssignedUserID: &alice.ID,
			Priority:       model.TaskPriorityHigh,
			Status:         model.TaskStatusToDo,
		},
		{
			Title:       "Review access roles",
			Description: "Check which endpoints should be admin only.",
			DueDate:     time.Now().AddDate(0, 0, 14),
			ProjectID:   project.ID,
			Priority:    model.TaskPriorityMedium,
			Status:      model.TaskStatusToDo,
		},
	}
	for i := range fixtures {
		if err := tasks.Create(ctx, &fixtures[i]); err != nil {
			log.Fatalf("Failed to create task: %v", err)
		}
	}

	log.Printf("Seeded 2 users, 1 project, %d tasks", len(fixtures))
}

func seedUser(ctx context.Context, users repository.UserRepository, passwords *auth.PasswordService, name, email, password string, role model.Role) *model.User {
	if existing, err := users.FindByEmail(ctx, email); err == nil {
		log.Printf("User %s already exists, skipping", email)
		return existing
	}

	hash, err := passwords.Hash(password)
	if err != nil {
		log.Fatalf("Failed to hash password for %s: %v", email, err)
	}
	user := &model.User{Name: name, Email: email, PasswordHash: hash, Role: role}
	if err := users.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create user %s: %v", email, err)
	}
	log.Printf("Created user %s (%s)", email, role)
	return user
}

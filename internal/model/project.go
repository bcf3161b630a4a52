package model

import "time"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusOpen       ProjectStatus = "open"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusOpen, ProjectStatusInProgress, ProjectStatusCompleted:
		return true
	}
	return false
}

// Project groups tasks and team members under a deadline.
type Project struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Name        string        `json:"name" gorm:"size:100;not null"`
	Description string        `json:"description" gorm:"size:700;not null"`
	StartDate   time.Time     `json:"start_date"`
	DueDate     time.Time     `json:"due_date" gorm:"not null"`
	Status      ProjectStatus `json:"status" gorm:"size:20;default:'open'"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Relations
	TeamMembers []User `json:"team_members,omitempty" gorm:"many2many:project_members"`
}

package model

import "time"

// TaskPriority is the urgency of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "to-do"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// Task is a unit of work inside a project, optionally assigned to a user.
// There are no cascade rules: deleting a project or user leaves references
// dangling, matching the store-level schema.
type Task struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	Title          string       `json:"title" gorm:"size:200;not null"`
	Description    string       `json:"description" gorm:"size:600;not null"`
	AssignedUserID *uint        `json:"assigned_user_id,omitempty"`
	Priority       TaskPriority `json:"priority" gorm:"size:10;default:'medium'"`
	Status         TaskStatus   `json:"status" gorm:"size:20;default:'to-do'"`
	DueDate        time.Time    `json:"due_date" gorm:"not null"`
	ProjectID      uint         `json:"project_id" gorm:"not null;index"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`

	// Relations
	AssignedUser *User    `json:"assigned_user,omitempty" gorm:"foreignKey:AssignedUserID"`
	Project      *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

package repository

import (
	"github.com/google/uuid"
	"github.com/pablotzeliks/todolist-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uuid.UUID) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uuid.UUID) (*models.Task, error)

	// FindByUserID retrieves every task owned by a user
	FindByUserID(userID uuid.UUID) ([]models.Task, error)

	// Update saves changes to an existing task
	Update(task *models.Task) error
}

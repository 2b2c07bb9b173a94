package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/pablotzeliks/todolist-api/internal/models"
)

// CreateTaskRequest is the task creation payload
type CreateTaskRequest struct {
	Title       string          `json:"title" validate:"required,max=50"`
	Description string          `json:"description" validate:"max=255"`
	StartAt     time.Time       `json:"startAt" validate:"required,futureorpresent"`
	EndAt       time.Time       `json:"endAt" validate:"required,future"`
	Priority    models.Priority `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH URGENT"`
}

// UpdateTaskRequest is the partial-update payload; absent fields stay nil
// and leave the stored values untouched
type UpdateTaskRequest struct {
	Title       *string          `json:"title" validate:"omitempty,max=50"`
	Description *string          `json:"description" validate:"omitempty,max=255"`
	StartAt     *time.Time       `json:"startAt" validate:"omitempty,futureorpresent"`
	EndAt       *time.Time       `json:"endAt" validate:"omitempty,future"`
	Priority    *models.Priority `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
}

// TaskResponse represents a task in API responses
type TaskResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StartAt     time.Time       `json:"startAt"`
	EndAt       time.Time       `json:"endAt"`
	Priority    models.Priority `json:"priority"`
	UserID      uuid.UUID       `json:"userId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt"`
}

// ToTaskResponse converts a Task model to TaskResponse
func ToTaskResponse(task models.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		StartAt:     task.StartAt,
		EndAt:       task.EndAt,
		Priority:    task.Priority,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskListResponse converts a slice of tasks to response DTOs
func ToTaskListResponse(tasks []models.Task) []TaskResponse {
	items := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskResponse(task)
	}
	return items
}

package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pablotzeliks/todolist-api/internal/constants"
	"github.com/pablotzeliks/todolist-api/internal/models"
	"github.com/pablotzeliks/todolist-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrNotTaskOwner       = errors.New("user does not have permission to access this task")
	ErrStartAfterEnd      = errors.New("start date cannot be after the end date")
	ErrStartEqualsEnd     = errors.New("start date cannot be equal to the end date")
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title must not exceed 50 characters")
	ErrDescriptionTooLong = errors.New("description must not exceed 255 characters")
	ErrInvalidPriority    = errors.New("priority must be one of LOW, MEDIUM, HIGH or URGENT")
)

// TaskService handles task business logic: date invariants, ownership
// checks and partial updates.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	StartAt     time.Time
	EndAt       time.Time
	Priority    models.Priority
}

// UpdateTaskInput represents input for updating a task. Only non-nil
// fields overwrite stored values.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	StartAt     *time.Time
	EndAt       *time.Time
	Priority    *models.Priority
}

// Create validates the input and persists a new task owned by userID.
func (s *TaskService) Create(input CreateTaskInput, userID uuid.UUID) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if len(input.Title) > constants.MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if len(input.Description) > constants.MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	if !input.Priority.Valid() {
		return nil, ErrInvalidPriority
	}

	if err := validateDates(input.StartAt, input.EndAt); err != nil {
		return nil, err
	}

	task := &models.Task{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		StartAt:     input.StartAt,
		EndAt:       input.EndAt,
		Priority:    input.Priority,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// List returns every task owned by userID. Order is repository-defined.
func (s *TaskService) List(userID uuid.UUID) ([]models.Task, error) {
	tasks, err := s.taskRepo.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Update applies a partial update to an existing task. Only the owner may
// update; the start/end invariant is re-checked against the merged dates
// before anything is written.
func (s *TaskService) Update(taskID uuid.UUID, input UpdateTaskInput, userID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.UserID != userID {
		return nil, ErrNotTaskOwner
	}

	// Effective dates after the merge must still satisfy start < end
	startAt := task.StartAt
	endAt := task.EndAt
	if input.StartAt != nil {
		startAt = *input.StartAt
	}
	if input.EndAt != nil {
		endAt = *input.EndAt
	}
	if err := validateDates(startAt, endAt); err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleRequired
		}
		if len(*input.Title) > constants.MaxTitleLength {
			return nil, ErrTitleTooLong
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		if len(*input.Description) > constants.MaxDescriptionLength {
			return nil, ErrDescriptionTooLong
		}
		task.Description = *input.Description
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return nil, ErrInvalidPriority
		}
		task.Priority = *input.Priority
	}
	task.StartAt = startAt
	task.EndAt = endAt

	now := time.Now()
	task.UpdatedAt = &now

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

func validateDates(startAt, endAt time.Time) error {
	if startAt.After(endAt) {
		return ErrStartAfterEnd
	}
	if startAt.Equal(endAt) {
		return ErrStartEqualsEnd
	}
	return nil
}

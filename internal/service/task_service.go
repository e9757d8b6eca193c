package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"arbos/internal/domain"
	"arbos/internal/port"
)

// CreateTaskInput is the DTO for creating a task.
type CreateTaskInput struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTaskInput is the DTO for partial task updates.
type UpdateTaskInput struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Status      *domain.TaskStatus `json:"status"`
	DueDate     *time.Time         `json:"due_date"`
}

// TaskService defines project task operations.
type TaskService interface {
	Create(ctx context.Context, ownerID, projectID uuid.UUID, input CreateTaskInput) (*domain.Task, error)
	GetByID(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)
	ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, status *domain.TaskStatus, offset, limit int) ([]domain.Task, int, error)
	Update(ctx context.Context, ownerID, taskID uuid.UUID, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, ownerID, taskID uuid.UUID) error
}

type taskService struct {
	taskRepo    port.TaskRepository
	projectRepo port.ProjectRepository
}

// NewTaskService creates a new TaskService implementation.
func NewTaskService(taskRepo port.TaskRepository, projectRepo port.ProjectRepository) TaskService {
	return &taskService{taskRepo: taskRepo, projectRepo: projectRepo}
}

func (s *taskService) Create(ctx context.Context, ownerID, projectID uuid.UUID, input CreateTaskInput) (*domain.Task, error) {
	if _, err := s.projectRepo.GetByID(ctx, ownerID, projectID); err != nil {
		return nil, err
	}

	task := &domain.Task{
		ProjectID:   projectID,
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.TaskStatusPending,
		DueDate:     input.DueDate,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error) {
	return s.taskRepo.GetByID(ctx, ownerID, taskID)
}

func (s *taskService) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, status *domain.TaskStatus, offset, limit int) ([]domain.Task, int, error) {
	if status != nil && !domain.ValidTaskStatuses[*status] {
		return nil, 0, domain.ErrInvalidStatus
	}
	return s.taskRepo.ListByProject(ctx, ownerID, projectID, status, offset, limit)
}

func (s *taskService) Update(ctx context.Context, ownerID, taskID uuid.UUID, input UpdateTaskInput) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !domain.ValidTaskStatuses[*input.Status] {
			return nil, domain.ErrInvalidStatus
		}
		// Stamp completion when a task transitions into done, and clear
		// it when it moves back out.
		if *input.Status == domain.TaskStatusDone && task.Status != domain.TaskStatusDone {
			now := time.Now()
			task.CompletedAt = &now
		}
		if *input.Status != domain.TaskStatusDone {
			task.CompletedAt = nil
		}
		task.Status = *input.Status
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, ownerID, taskID uuid.UUID) error {
	return s.taskRepo.Delete(ctx, ownerID, taskID)
}

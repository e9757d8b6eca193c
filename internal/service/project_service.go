package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"arbos/internal/domain"
	"arbos/internal/port"
)

// CreateProjectInput is the DTO for creating a project.
type CreateProjectInput struct {
	Name        string     `json:"name" binding:"required"`
	ClientName  string     `json:"client_name" binding:"required"`
	SiteAddress string     `json:"site_address"`
	Description string     `json:"description"`
	SurveyDate  *time.Time `json:"survey_date"`
}

// UpdateProjectInput is the DTO for partial project updates.
type UpdateProjectInput struct {
	Name        *string               `json:"name"`
	ClientName  *string               `json:"client_name"`
	SiteAddress *string               `json:"site_address"`
	Description *string               `json:"description"`
	Status      *domain.ProjectStatus `json:"status"`
	SurveyDate  *time.Time            `json:"survey_date"`
}

// ProjectService defines project management operations.
type ProjectService interface {
	Create(ctx context.Context, ownerID uuid.UUID, input CreateProjectInput) (*domain.Project, error)
	GetByID(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Project, int, error)
	Update(ctx context.Context, ownerID, projectID uuid.UUID, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, ownerID, projectID uuid.UUID) error
}

type projectService struct {
	projectRepo port.ProjectRepository
}

// NewProjectService creates a new ProjectService implementation.
func NewProjectService(projectRepo port.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) Create(ctx context.Context, ownerID uuid.UUID, input CreateProjectInput) (*domain.Project, error) {
	project := &domain.Project{
		OwnerID:     ownerID,
		Name:        input.Name,
		ClientName:  input.ClientName,
		SiteAddress: input.SiteAddress,
		Description: input.Description,
		Status:      domain.ProjectStatusActive,
		SurveyDate:  input.SurveyDate,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, ownerID, projectID uuid.UUID) (*domain.Project, error) {
	return s.projectRepo.GetByID(ctx, ownerID, projectID)
}

func (s *projectService) List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Project, int, error) {
	return s.projectRepo.ListByOwner(ctx, ownerID, offset, limit)
}

func (s *projectService) Update(ctx context.Context, ownerID, projectID uuid.UUID, input UpdateProjectInput) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.ClientName != nil {
		project.ClientName = *input.ClientName
	}
	if input.SiteAddress != nil {
		project.SiteAddress = *input.SiteAddress
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Status != nil {
		if !domain.ValidProjectStatuses[*input.Status] {
			return nil, domain.ErrInvalidStatus
		}
		project.Status = *input.Status
	}
	if input.SurveyDate != nil {
		project.SurveyDate = input.SurveyDate
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project. Trees, notes, tasks, reports, and attachment
// rows cascade at the database level.
func (s *projectService) Delete(ctx context.Context, ownerID, projectID uuid.UUID) error {
	return s.projectRepo.Delete(ctx, ownerID, projectID)
}

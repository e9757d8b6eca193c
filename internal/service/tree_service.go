package service

import (
	"context"
	"math"

	"github.com/google/uuid"

	"arbos/internal/domain"
	"arbos/internal/port"
)

// BS5837 root protection area: radius in metres is 12 times the stem
// diameter, capped at 15m.
const (
	rpaMultiplier = 12.0
	rpaMaxRadiusM = 15.0
)

// CreateTreeInput is the DTO for recording a surveyed tree.
type CreateTreeInput struct {
	TreeNumber   string                   `json:"tree_number" binding:"required"`
	Species      string                   `json:"species" binding:"required"`
	CommonName   string                   `json:"common_name"`
	HeightM      float64                  `json:"height_m"`
	DBHMm        int                      `json:"dbh_mm"`
	CrownSpreadM float64                  `json:"crown_spread_m"`
	AgeClass     domain.AgeClass          `json:"age_class"`
	Condition    domain.TreeCondition     `json:"condition"`
	Category     domain.RetentionCategory `json:"category"`
	Observations string                   `json:"observations"`
}

// UpdateTreeInput is the DTO for partial tree updates.
type UpdateTreeInput struct {
	TreeNumber   *string                   `json:"tree_number"`
	Species      *string                   `json:"species"`
	CommonName   *string                   `json:"common_name"`
	HeightM      *float64                  `json:"height_m"`
	DBHMm        *int                      `json:"dbh_mm"`
	CrownSpreadM *float64                  `json:"crown_spread_m"`
	AgeClass     *domain.AgeClass          `json:"age_class"`
	Condition    *domain.TreeCondition     `json:"condition"`
	Category     *domain.RetentionCategory `json:"category"`
	Observations *string                   `json:"observations"`
}

// TreeService defines tree schedule operations.
type TreeService interface {
	Create(ctx context.Context, ownerID, projectID uuid.UUID, input CreateTreeInput) (*domain.Tree, error)
	GetByID(ctx context.Context, ownerID, treeID uuid.UUID) (*domain.Tree, error)
	ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Tree, int, error)
	Update(ctx context.Context, ownerID, treeID uuid.UUID, input UpdateTreeInput) (*domain.Tree, error)
	Delete(ctx context.Context, ownerID, treeID uuid.UUID) error
}

type treeService struct {
	treeRepo    port.TreeRepository
	projectRepo port.ProjectRepository
}

// NewTreeService creates a new TreeService implementation.
func NewTreeService(treeRepo port.TreeRepository, projectRepo port.ProjectRepository) TreeService {
	return &treeService{treeRepo: treeRepo, projectRepo: projectRepo}
}

func (s *treeService) Create(ctx context.Context, ownerID, projectID uuid.UUID, input CreateTreeInput) (*domain.Tree, error) {
	// Verify the project exists and belongs to the caller.
	if _, err := s.projectRepo.GetByID(ctx, ownerID, projectID); err != nil {
		return nil, err
	}

	if input.AgeClass != "" && !domain.ValidAgeClasses[input.AgeClass] {
		return nil, domain.ErrInvalidStatus
	}
	if input.Condition != "" && !domain.ValidTreeConditions[input.Condition] {
		return nil, domain.ErrInvalidStatus
	}
	if input.Category != "" && !domain.ValidRetentionCategories[input.Category] {
		return nil, domain.ErrInvalidStatus
	}

	tree := &domain.Tree{
		ProjectID:    projectID,
		OwnerID:      ownerID,
		TreeNumber:   input.TreeNumber,
		Species:      input.Species,
		CommonName:   input.CommonName,
		HeightM:      input.HeightM,
		DBHMm:        input.DBHMm,
		CrownSpreadM: input.CrownSpreadM,
		AgeClass:     input.AgeClass,
		Condition:    input.Condition,
		Category:     input.Category,
		RPARadiusM:   rpaRadius(input.DBHMm),
		Observations: input.Observations,
	}
	if err := s.treeRepo.Create(ctx, tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func (s *treeService) GetByID(ctx context.Context, ownerID, treeID uuid.UUID) (*domain.Tree, error) {
	return s.treeRepo.GetByID(ctx, ownerID, treeID)
}

func (s *treeService) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Tree, int, error) {
	return s.treeRepo.ListByProject(ctx, ownerID, projectID, offset, limit)
}

func (s *treeService) Update(ctx context.Context, ownerID, treeID uuid.UUID, input UpdateTreeInput) (*domain.Tree, error) {
	tree, err := s.treeRepo.GetByID(ctx, ownerID, treeID)
	if err != nil {
		return nil, err
	}

	if input.TreeNumber != nil {
		tree.TreeNumber = *input.TreeNumber
	}
	if input.Species != nil {
		tree.Species = *input.Species
	}
	if input.CommonName != nil {
		tree.CommonName = *input.CommonName
	}
	if input.HeightM != nil {
		tree.HeightM = *input.HeightM
	}
	if input.DBHMm != nil {
		tree.DBHMm = *input.DBHMm
		tree.RPARadiusM = rpaRadius(*input.DBHMm)
	}
	if input.CrownSpreadM != nil {
		tree.CrownSpreadM = *input.CrownSpreadM
	}
	if input.AgeClass != nil {
		if !domain.ValidAgeClasses[*input.AgeClass] {
			return nil, domain.ErrInvalidStatus
		}
		tree.AgeClass = *input.AgeClass
	}
	if input.Condition != nil {
		if !domain.ValidTreeConditions[*input.Condition] {
			return nil, domain.ErrInvalidStatus
		}
		tree.Condition = *input.Condition
	}
	if input.Category != nil {
		if !domain.ValidRetentionCategories[*input.Category] {
			return nil, domain.ErrInvalidStatus
		}
		tree.Category = *input.Category
	}
	if input.Observations != nil {
		tree.Observations = *input.Observations
	}

	if err := s.treeRepo.Update(ctx, tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func (s *treeService) Delete(ctx context.Context, ownerID, treeID uuid.UUID) error {
	return s.treeRepo.Delete(ctx, ownerID, treeID)
}

func rpaRadius(dbhMm int) float64 {
	if dbhMm <= 0 {
		return 0
	}
	radius := rpaMultiplier * float64(dbhMm) / 1000.0
	radius = math.Min(radius, rpaMaxRadiusM)
	return math.Round(radius*100) / 100
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"arbos/internal/domain"
	"arbos/internal/port"
)

type treeRepo struct {
	db *sqlx.DB
}

// NewTreeRepo creates a new PostgreSQL-backed TreeRepository.
func NewTreeRepo(db *sqlx.DB) port.TreeRepository {
	return &treeRepo{db: db}
}

func (r *treeRepo) Create(ctx context.Context, tree *domain.Tree) error {
	tree.ID = uuid.New()
	now := time.Now().UTC()
	tree.CreatedAt = now
	tree.UpdatedAt = now

	query := `INSERT INTO trees (id, project_id, owner_id, tree_number, species, common_name,
		height_m, dbh_mm, crown_spread_m, age_class, condition, category, rpa_radius_m,
		observations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.ExecContext(ctx, query,
		tree.ID, tree.ProjectID, tree.OwnerID, tree.TreeNumber, tree.Species,
		tree.CommonName, tree.HeightM, tree.DBHMm, tree.CrownSpreadM, tree.AgeClass,
		tree.Condition, tree.Category, tree.RPARadiusM, tree.Observations,
		tree.CreatedAt, tree.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateTreeNumber
		}
		return fmt.Errorf("treeRepo.Create: %w", err)
	}
	return nil
}

func (r *treeRepo) GetByID(ctx context.Context, ownerID, treeID uuid.UUID) (*domain.Tree, error) {
	var tree domain.Tree
	err := r.db.GetContext(ctx, &tree,
		"SELECT * FROM trees WHERE id = $1 AND owner_id = $2", treeID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("treeRepo.GetByID: %w", err)
	}
	return &tree, nil
}

func (r *treeRepo) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Tree, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM trees WHERE project_id = $1 AND owner_id = $2", projectID, ownerID)
	if err != nil {
		return nil, 0, fmt.Errorf("treeRepo.ListByProject count: %w", err)
	}

	var trees []domain.Tree
	err = r.db.SelectContext(ctx, &trees,
		`SELECT * FROM trees WHERE project_id = $1 AND owner_id = $2
		 ORDER BY tree_number ASC LIMIT $3 OFFSET $4`,
		projectID, ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("treeRepo.ListByProject: %w", err)
	}
	return trees, total, nil
}

// ListAllByProject returns every tree in a project, unpaginated, in tree
// number order. Used by schedule exports.
func (r *treeRepo) ListAllByProject(ctx context.Context, ownerID, projectID uuid.UUID) ([]domain.Tree, error) {
	var trees []domain.Tree
	err := r.db.SelectContext(ctx, &trees,
		`SELECT * FROM trees WHERE project_id = $1 AND owner_id = $2 ORDER BY tree_number ASC`,
		projectID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("treeRepo.ListAllByProject: %w", err)
	}
	return trees, nil
}

func (r *treeRepo) Update(ctx context.Context, tree *domain.Tree) error {
	tree.UpdatedAt = time.Now().UTC()
	query := `UPDATE trees SET tree_number = $1, species = $2, common_name = $3, height_m = $4,
		dbh_mm = $5, crown_spread_m = $6, age_class = $7, condition = $8, category = $9,
		rpa_radius_m = $10, observations = $11, updated_at = $12
		WHERE id = $13 AND owner_id = $14`
	result, err := r.db.ExecContext(ctx, query,
		tree.TreeNumber, tree.Species, tree.CommonName, tree.HeightM, tree.DBHMm,
		tree.CrownSpreadM, tree.AgeClass, tree.Condition, tree.Category,
		tree.RPARadiusM, tree.Observations, tree.UpdatedAt, tree.ID, tree.OwnerID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateTreeNumber
		}
		return fmt.Errorf("treeRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a tree. Notes and attachments linked to the tree cascade
// via foreign keys.
func (r *treeRepo) Delete(ctx context.Context, ownerID, treeID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM trees WHERE id = $1 AND owner_id = $2", treeID, ownerID)
	if err != nil {
		return fmt.Errorf("treeRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

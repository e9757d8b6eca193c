package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"arbos/internal/domain"
	"arbos/internal/port"
)

// UpdateUserInput is the DTO for user profile updates.
type UpdateUserInput struct {
	FullName *string          `json:"full_name"`
	Role     *domain.UserRole `json:"role"`
	IsActive *bool            `json:"is_active"`
}

// UserService defines user management operations.
type UserService interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, actor *domain.User, userID uuid.UUID, input UpdateUserInput) (*domain.User, error)
	Deactivate(ctx context.Context, actor *domain.User, userID uuid.UUID) error
}

type userService struct {
	userRepo port.UserRepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(userRepo port.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) List(ctx context.Context, offset, limit int) ([]domain.User, int, error) {
	return s.userRepo.List(ctx, offset, limit)
}

// Update applies a partial update. Only admins may change role or active
// status; users may update their own name.
func (s *userService) Update(ctx context.Context, actor *domain.User, userID uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	if actor.Role != domain.RoleAdmin && actor.ID != userID {
		return nil, domain.ErrForbidden
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Role != nil {
		if actor.Role != domain.RoleAdmin {
			return nil, domain.ErrForbidden
		}
		if !domain.ValidUserRoles[*input.Role] {
			return nil, fmt.Errorf("user.Update: invalid role %q", *input.Role)
		}
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		if actor.Role != domain.RoleAdmin {
			return nil, domain.ErrForbidden
		}
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Deactivate(ctx context.Context, actor *domain.User, userID uuid.UUID) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.IsActive = false
	return s.userRepo.Update(ctx, user)
}

package service

import (
	"context"
	"fmt"

	"github.com/campushub/events-api/internal/domain"
)

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetUser resolves a user id. Synthesized admin ids (admin-<username>)
// come from the seed table and are never looked up in the collection.
func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	if acc, ok := domain.FindAdminByID(id); ok {
		return acc.SynthesizeAdmin(), nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return users, nil
}

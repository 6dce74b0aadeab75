package service

import (
	"context"
	"errors"

	"planora/internal/apperr"
	"planora/internal/model"
	"planora/internal/repository"
	"planora/pkg/generic"
	"planora/pkg/util"
)

// UserService handles profile and budget operations.
type UserService struct {
	users repository.IUserRepository
}

func NewUserService(users repository.IUserRepository) *UserService {
	return &UserService{users: users}
}

// Me re-checks that the session's user still exists and returns it.
func (s *UserService) Me(ctx context.Context, userID string) (*model.User, error) {
	uid, err := util.ParseObjectID(userID)
	if err != nil {
		return nil, apperr.Validation("Invalid user ID")
	}

	user, err := s.users.FindByID(ctx, uid)
	if errors.Is(err, generic.ErrNotFound) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, apperr.Dependency("Server error", err)
	}
	return user, nil
}

// GetBudget returns the user's current budget.
func (s *UserService) GetBudget(ctx context.Context, userID string) (float64, error) {
	user, err := s.Me(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.Budget, nil
}

// SetBudget overwrites the user's budget.
func (s *UserService) SetBudget(ctx context.Context, userID string, req model.BudgetRequest) error {
	if req.Budget == nil {
		return apperr.Validation("Budget is required.")
	}
	if *req.Budget < 0 {
		return apperr.Validation("Budget cannot be negative.")
	}

	uid, err := util.ParseObjectID(userID)
	if err != nil {
		return apperr.Validation("Invalid user ID")
	}

	err = s.users.SetBudget(ctx, uid, *req.Budget)
	if errors.Is(err, generic.ErrNotFound) {
		return apperr.NotFound("User not found")
	}
	if err != nil {
		return apperr.Dependency("Server error", err)
	}
	return nil
}

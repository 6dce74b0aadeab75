package service

import (
	"context"
	"errors"

	"planora/internal/apperr"
	"planora/internal/model"
	"planora/internal/repository"
	"planora/pkg/generic"
	"planora/pkg/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExpenseService handles expense CRUD scoped to the owning user.
type ExpenseService struct {
	expenses repository.IExpenseRepository
	users    repository.IUserRepository
}

func NewExpenseService(expenses repository.IExpenseRepository, users repository.IUserRepository) *ExpenseService {
	return &ExpenseService{expenses: expenses, users: users}
}

func validateExpense(req model.ExpenseRequest) error {
	if req.Amount == nil || req.Category == "" || req.Date == "" {
		return apperr.Validation("Amount, category, and date are required.")
	}
	if *req.Amount < 0 {
		return apperr.Validation("Amount cannot be negative.")
	}
	return nil
}

// Create persists a new expense, then links its id onto the owning user.
// The two writes are separate document operations: a crash between them
// leaves an orphaned expense unreferenced by the user. That failure mode is
// accepted and surfaced, not rolled back.
func (s *ExpenseService) Create(ctx context.Context, userID string, req model.ExpenseRequest) (*model.Expense, error) {
	if err := validateExpense(req); err != nil {
		return nil, err
	}

	uid, err := util.ParseObjectID(userID)
	if err != nil {
		return nil, apperr.Validation("Invalid user ID")
	}

	expense := &model.Expense{
		Amount:   *req.Amount,
		Category: req.Category,
		Date:     req.Date,
		Notes:    req.Notes,
		UserID:   uid,
	}
	created, err := s.expenses.Create(ctx, expense)
	if err != nil {
		return nil, apperr.Dependency("Server error, could not save expense.", err)
	}

	if err := s.users.PushExpense(ctx, uid, created.ID); err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, apperr.NotFound("User not found.")
		}
		return nil, apperr.Dependency("Server error, could not save expense.", err)
	}
	return created, nil
}

// List returns the user's expenses in the order of the user's reference
// list, which is insertion order.
func (s *ExpenseService) List(ctx context.Context, userID string) ([]*model.Expense, error) {
	uid, err := util.ParseObjectID(userID)
	if err != nil {
		return nil, apperr.Validation("Invalid user ID")
	}

	user, err := s.users.FindByID(ctx, uid)
	if errors.Is(err, generic.ErrNotFound) {
		return nil, apperr.NotFound("User not found.")
	}
	if err != nil {
		return nil, apperr.Dependency("Server error", err)
	}

	expenses, err := s.expenses.FindByIDs(ctx, user.Expenses)
	if err != nil {
		return nil, apperr.Dependency("Server error", err)
	}

	return orderByRefs(user.Expenses, expenses), nil
}

// orderByRefs restores the user's reference order, which $in does not
// guarantee.
func orderByRefs(refs []primitive.ObjectID, expenses []*model.Expense) []*model.Expense {
	byID := make(map[primitive.ObjectID]*model.Expense, len(expenses))
	for _, e := range expenses {
		byID[e.ID] = e
	}
	ordered := make([]*model.Expense, 0, len(expenses))
	for _, id := range refs {
		if e, ok := byID[id]; ok {
			ordered = append(ordered, e)
		}
	}
	return ordered
}

// Update rewrites an owned expense. Ownership is part of the match filter;
// someone else's expense reports not-found.
func (s *ExpenseService) Update(ctx context.Context, userID, expenseID string, req model.ExpenseRequest) (*model.Expense, error) {
	if err := validateExpense(req); err != nil {
		return nil, err
	}

	uid, err := util.ParseObjectID(userID)
	if err != nil {
		return nil, apperr.Validation("Invalid user ID")
	}
	eid, err := util.ParseObjectID(expenseID)
	if err != nil {
		return nil, apperr.Validation("Invalid expense ID format")
	}

	patch := &model.Expense{
		Amount:   *req.Amount,
		Category: req.Category,
		Date:     req.Date,
		Notes:    req.Notes,
	}
	updated, err := s.expenses.UpdateOwned(ctx, eid, uid, patch)
	if errors.Is(err, generic.ErrNotFound) {
		return nil, apperr.NotFound("Expense not found or unauthorized.")
	}
	if err != nil {
		return nil, apperr.Dependency("Server error, could not update expense.", err)
	}
	return updated, nil
}

// Delete removes an owned expense.
func (s *ExpenseService) Delete(ctx context.Context, userID, expenseID string) error {
	uid, err := util.ParseObjectID(userID)
	if err != nil {
		return apperr.Validation("Invalid user ID")
	}
	eid, err := util.ParseObjectID(expenseID)
	if err != nil {
		return apperr.Validation("Invalid expense ID format")
	}

	err = s.expenses.DeleteOwned(ctx, eid, uid)
	if errors.Is(err, generic.ErrNotFound) {
		return apperr.NotFound("Expense not found or unauthorized.")
	}
	if err != nil {
		return apperr.Dependency("Server error, could not delete expense.", err)
	}
	return nil
}

// Package testutil provides in-memory repository fakes for tests. They
// mirror the Mongo repositories' observable behavior, including the
// ownership-scoped not-found semantics and the idempotent $addToSet link.
package testutil

import (
	"context"
	"sync"
	"time"

	"planora/internal/model"
	"planora/pkg/generic"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FakeUserRepo is an in-memory IUserRepository.
type FakeUserRepo struct {
	mu    sync.Mutex
	Users map[primitive.ObjectID]*model.User
	// Err, when set, fails every operation; simulates an unreachable store.
	Err error
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{Users: make(map[primitive.ObjectID]*model.User)}
}

func (f *FakeUserRepo) Create(_ context.Context, user *model.User) (*model.User, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = primitive.NewObjectID()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Expenses == nil {
		user.Expenses = []primitive.ObjectID{}
	}
	if user.ProjectManagementIDs == nil {
		user.ProjectManagementIDs = []primitive.ObjectID{}
	}
	f.Users[user.ID] = user
	return user, nil
}

func (f *FakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.Users[id]
	if !ok {
		return nil, generic.ErrNotFound
	}
	return user, nil
}

func (f *FakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, generic.ErrNotFound
}

func (f *FakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.Users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, generic.ErrNotFound
}

func (f *FakeUserRepo) SetBudget(_ context.Context, id primitive.ObjectID, budget float64) error {
	if f.Err != nil {
		return f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.Users[id]
	if !ok {
		return generic.ErrNotFound
	}
	user.Budget = budget
	return nil
}

func (f *FakeUserRepo) PushExpense(_ context.Context, userID, expenseID primitive.ObjectID) error {
	if f.Err != nil {
		return f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.Users[userID]
	if !ok {
		return generic.ErrNotFound
	}
	user.Expenses = append(user.Expenses, expenseID)
	return nil
}

func (f *FakeUserRepo) AddProject(_ context.Context, userID, projectID primitive.ObjectID) error {
	if f.Err != nil {
		return f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.Users[userID]
	if !ok {
		return generic.ErrNotFound
	}
	for _, id := range user.ProjectManagementIDs {
		if id == projectID {
			return nil // $addToSet: already present
		}
	}
	user.ProjectManagementIDs = append(user.ProjectManagementIDs, projectID)
	return nil
}

func (f *FakeUserRepo) SetMember(_ context.Context, id primitive.ObjectID, isMember bool) error {
	if f.Err != nil {
		return f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.Users[id]
	if !ok {
		return generic.ErrNotFound
	}
	user.IsMember = isMember
	return nil
}

// FakeExpenseRepo is an in-memory IExpenseRepository.
type FakeExpenseRepo struct {
	mu       sync.Mutex
	Expenses map[primitive.ObjectID]*model.Expense
	Err      error
}

func NewFakeExpenseRepo() *FakeExpenseRepo {
	return &FakeExpenseRepo{Expenses: make(map[primitive.ObjectID]*model.Expense)}
}

func (f *FakeExpenseRepo) Create(_ context.Context, expense *model.Expense) (*model.Expense, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	expense.ID = primitive.NewObjectID()
	now := time.Now()
	expense.CreatedAt = now
	expense.UpdatedAt = now
	f.Expenses[expense.ID] = expense
	return expense, nil
}

func (f *FakeExpenseRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]*model.Expense, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	results := []*model.Expense{}
	for _, id := range ids {
		if e, ok := f.Expenses[id]; ok {
			results = append(results, e)
		}
	}
	return results, nil
}

func (f *FakeExpenseRepo) UpdateOwned(_ context.Context, id, userID primitive.ObjectID, patch *model.Expense) (*model.Expense, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	expense, ok := f.Expenses[id]
	if !ok || expense.UserID != userID {
		return nil, generic.ErrNotFound
	}
	expense.Amount = patch.Amount
	expense.Category = patch.Category
	expense.Date = patch.Date
	expense.Notes = patch.Notes
	expense.UpdatedAt = time.Now()
	return expense, nil
}

func (f *FakeExpenseRepo) DeleteOwned(_ context.Context, id, userID primitive.ObjectID) error {
	if f.Err != nil {
		return f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	expense, ok := f.Expenses[id]
	if !ok || expense.UserID != userID {
		return generic.ErrNotFound
	}
	delete(f.Expenses, id)
	return nil
}

// FakeProjectRepo is an in-memory IProjectRepository.
type FakeProjectRepo struct {
	mu       sync.Mutex
	Projects map[primitive.ObjectID]*model.ProjectManagement
	Err      error
}

func NewFakeProjectRepo() *FakeProjectRepo {
	return &FakeProjectRepo{Projects: make(map[primitive.ObjectID]*model.ProjectManagement)}
}

func (f *FakeProjectRepo) Create(_ context.Context, project *model.ProjectManagement) (*model.ProjectManagement, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	project.ID = primitive.NewObjectID()
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.ExecutionNotes == nil {
		project.ExecutionNotes = []model.ExecutionNote{}
	}
	f.Projects[project.ID] = project
	return project, nil
}

func (f *FakeProjectRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.ProjectManagement, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	project, ok := f.Projects[id]
	if !ok {
		return nil, generic.ErrNotFound
	}
	return project, nil
}

func (f *FakeProjectRepo) FindSummariesByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.EventSummary, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	summaries := []model.EventSummary{}
	for _, id := range ids {
		p, ok := f.Projects[id]
		if !ok {
			continue
		}
		name := ""
		if p.EventPlanning != nil {
			name = p.EventPlanning.EventName
		}
		summaries = append(summaries, model.EventSummary{ProjectID: p.ID.Hex(), EventName: name})
	}
	return summaries, nil
}

func (f *FakeProjectRepo) SetFinancialModel(_ context.Context, id primitive.ObjectID, fm *model.FinancialModel) (*model.ProjectManagement, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	project, ok := f.Projects[id]
	if !ok {
		return nil, generic.ErrNotFound
	}
	project.FinancialModel = fm
	project.UpdatedAt = time.Now()
	return project, nil
}

func (f *FakeProjectRepo) AppendNote(_ context.Context, id primitive.ObjectID, note model.ExecutionNote) (*model.ProjectManagement, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	project, ok := f.Projects[id]
	if !ok {
		return nil, generic.ErrNotFound
	}
	project.ExecutionNotes = append(project.ExecutionNotes, note)
	project.UpdatedAt = time.Now()
	return project, nil
}

// FakeMembershipRepo is an in-memory IMembershipRepository.
type FakeMembershipRepo struct {
	mu          sync.Mutex
	Memberships []*model.Membership
	Err         error
}

func NewFakeMembershipRepo() *FakeMembershipRepo {
	return &FakeMembershipRepo{}
}

func (f *FakeMembershipRepo) Create(_ context.Context, membership *model.Membership) (*model.Membership, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	membership.ID = primitive.NewObjectID()
	membership.CreatedAt = time.Now()
	f.Memberships = append(f.Memberships, membership)
	return membership, nil
}

func (f *FakeMembershipRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) (*model.Membership, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.Memberships {
		if m.UserID == userID {
			return m, nil
		}
	}
	return nil, generic.ErrNotFound
}

// FakeContactRepo is an in-memory IContactRepository.
type FakeContactRepo struct {
	mu       sync.Mutex
	Contacts []*model.Contact
	Err      error
}

func NewFakeContactRepo() *FakeContactRepo {
	return &FakeContactRepo{}
}

func (f *FakeContactRepo) Create(_ context.Context, contact *model.Contact) (*model.Contact, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	contact.ID = primitive.NewObjectID()
	contact.CreatedAt = time.Now()
	f.Contacts = append(f.Contacts, contact)
	return contact, nil
}

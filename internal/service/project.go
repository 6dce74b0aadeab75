package service

import (
	"context"
	"errors"
	"time"

	"planora/internal/apperr"
	"planora/internal/model"
	"planora/internal/repository"
	"planora/pkg/generic"
	"planora/pkg/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectService implements the project aggregate update protocol: create
// with an event plan, wholesale financial-model replace, append-only notes,
// and the read projections.
type ProjectService struct {
	projects repository.IProjectRepository
	users    repository.IUserRepository
}

func NewProjectService(projects repository.IProjectRepository, users repository.IUserRepository) *ProjectService {
	return &ProjectService{projects: projects, users: users}
}

// CreateWithEventPlan creates the aggregate with only the planning region
// populated and registers its id on the owning user. The two writes are not
// one transaction; the $addToSet link itself is atomic and idempotent.
func (s *ProjectService) CreateWithEventPlan(ctx context.Context, userID string, req model.EventPlanRequest) (*model.ProjectManagement, error) {
	if req.EventName == "" || req.Date == "" || req.Location == "" || req.Attendees <= 0 {
		return nil, apperr.Validation("Event name, date, location, and number of attendees are required.")
	}

	uid, err := util.ParseObjectID(userID)
	if err != nil {
		return nil, apperr.Validation("Invalid user ID")
	}

	project := &model.ProjectManagement{
		UserID: uid,
		EventPlanning: &model.EventPlan{
			EventName: req.EventName,
			Date:      req.Date,
			Location:  req.Location,
			Attendees: req.Attendees,
			Notes:     req.Notes,
		},
	}
	created, err := s.projects.Create(ctx, project)
	if err != nil {
		return nil, apperr.Dependency("Server error, could not save event plan.", err)
	}

	if err := s.users.AddProject(ctx, uid, created.ID); err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, apperr.NotFound("User not found.")
		}
		return nil, apperr.Dependency("Server error, could not save event plan.", err)
	}
	return created, nil
}

// ListEvents returns the (projectId, eventName) picklist for every project
// the user owns.
func (s *ProjectService) ListEvents(ctx context.Context, userID string) ([]model.EventSummary, error) {
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

	summaries, err := s.projects.FindSummariesByIDs(ctx, user.ProjectManagementIDs)
	if err != nil {
		return nil, apperr.Dependency("Server error", err)
	}
	return summaries, nil
}

// AttachFinancialModel replaces the financialModeling region wholesale; a
// second attach overwrites the first completely, no field merge.
func (s *ProjectService) AttachFinancialModel(ctx context.Context, userID string, req model.FinancialModelRequest) (*model.ProjectManagement, error) {
	if req.Budget == nil || req.Income == nil || req.ProfitMargin == nil {
		return nil, apperr.Validation("Budget, income, and profit margin are required.")
	}

	uid, err := util.ParseObjectID(userID)
	if err != nil {
		return nil, apperr.Validation("Invalid user ID")
	}
	pid, err := s.resolveProjectID(req.ProjectID)
	if err != nil {
		return nil, err
	}

	fm := &model.FinancialModel{
		Budget:       *req.Budget,
		Income:       *req.Income,
		ProfitMargin: *req.ProfitMargin,
		UserID:       uid,
	}
	updated, err := s.projects.SetFinancialModel(ctx, pid, fm)
	if errors.Is(err, generic.ErrNotFound) {
		return nil, apperr.NotFound("Project not found.")
	}
	if err != nil {
		return nil, apperr.Dependency("Server error, could not save financial model.", err)
	}
	return updated, nil
}

// AppendNote resolves the project, snapshots its current event name into the
// note, and appends it. Later event renames never rewrite historical notes.
func (s *ProjectService) AppendNote(ctx context.Context, req model.NoteRequest) (*model.ProjectManagement, error) {
	if req.Notes == "" || req.Category == "" || req.DateTime == "" {
		return nil, apperr.Validation("Notes, category, importance, and date/time are required.")
	}

	importance := req.Importance
	if importance == "" {
		importance = model.ImportanceNormal
	}
	switch importance {
	case model.ImportanceHigh, model.ImportanceNormal, model.ImportanceLow:
	default:
		return nil, apperr.Validation("Importance must be High, Normal, or Low.")
	}

	pid, err := s.resolveProjectID(req.ProjectID)
	if err != nil {
		return nil, err
	}

	project, err := s.projects.FindByID(ctx, pid)
	if errors.Is(err, generic.ErrNotFound) {
		return nil, apperr.NotFound("Project not found.")
	}
	if err != nil {
		return nil, apperr.Dependency("Server error, could not save note.", err)
	}

	eventName := ""
	if project.EventPlanning != nil {
		eventName = project.EventPlanning.EventName
	}

	note := model.ExecutionNote{
		Notes:      req.Notes,
		Category:   req.Category,
		EventName:  eventName,
		Importance: importance,
		DateTime:   req.DateTime,
		CreatedAt:  time.Now(),
	}
	updated, err := s.projects.AppendNote(ctx, pid, note)
	if errors.Is(err, generic.ErrNotFound) {
		return nil, apperr.NotFound("Project not found.")
	}
	if err != nil {
		return nil, apperr.Dependency("Server error, could not save note.", err)
	}
	return updated, nil
}

// Notes returns the notes-only projection of the aggregate.
func (s *ProjectService) Notes(ctx context.Context, projectID string) ([]model.ExecutionNote, error) {
	project, err := s.Preview(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.ExecutionNotes == nil {
		return []model.ExecutionNote{}, nil
	}
	return project.ExecutionNotes, nil
}

// Preview returns the full aggregate.
func (s *ProjectService) Preview(ctx context.Context, projectID string) (*model.ProjectManagement, error) {
	pid, err := s.resolveProjectID(projectID)
	if err != nil {
		return nil, err
	}

	project, err := s.projects.FindByID(ctx, pid)
	if errors.Is(err, generic.ErrNotFound) {
		return nil, apperr.NotFound("Project not found.")
	}
	if err != nil {
		return nil, apperr.Dependency("Server error, could not fetch project.", err)
	}
	return project, nil
}

// resolveProjectID treats an unparseable id like any other id that resolves
// to nothing.
func (s *ProjectService) resolveProjectID(id string) (primitive.ObjectID, error) {
	pid, err := util.ParseObjectID(id)
	if err != nil {
		return primitive.NilObjectID, apperr.NotFound("Project not found.")
	}
	return pid, nil
}

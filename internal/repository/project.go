package repository

import (
	"context"
	"time"

	"planora/internal/model"
	"planora/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IProjectRepository defines project aggregate persistence
type IProjectRepository interface {
	Create(ctx context.Context, project *model.ProjectManagement) (*model.ProjectManagement, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.ProjectManagement, error)
	FindSummariesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.EventSummary, error)
	SetFinancialModel(ctx context.Context, id primitive.ObjectID, fm *model.FinancialModel) (*model.ProjectManagement, error)
	AppendNote(ctx context.Context, id primitive.ObjectID, note model.ExecutionNote) (*model.ProjectManagement, error)
}

// ProjectRepository implements project aggregate persistence over Mongo
type ProjectRepository struct {
	*generic.BaseRepository[*model.ProjectManagement]
}

func NewProjectRepository(db *mongo.Database) IProjectRepository {
	return &ProjectRepository{generic.NewBaseRepository[*model.ProjectManagement](db.Collection("projectmanagements"))}
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.ProjectManagement) (*model.ProjectManagement, error) {
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.ExecutionNotes == nil {
		project.ExecutionNotes = []model.ExecutionNote{}
	}
	if err := r.Insert(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// FindSummariesByIDs returns the (projectId, eventName) picklist projection
// without transferring the full nested documents.
func (r *ProjectRepository) FindSummariesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.EventSummary, error) {
	if len(ids) == 0 {
		return []model.EventSummary{}, nil
	}

	opts := options.Find().SetProjection(bson.M{"eventPlanning.eventName": 1})
	projects, err := r.FindMany(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.EventSummary, 0, len(projects))
	for _, p := range projects {
		name := ""
		if p.EventPlanning != nil {
			name = p.EventPlanning.EventName
		}
		summaries = append(summaries, model.EventSummary{
			ProjectID: p.ID.Hex(),
			EventName: name,
		})
	}
	return summaries, nil
}

// SetFinancialModel replaces the financialModeling region wholesale.
func (r *ProjectRepository) SetFinancialModel(ctx context.Context, id primitive.ObjectID, fm *model.FinancialModel) (*model.ProjectManagement, error) {
	return r.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"financialModeling": fm, "updatedAt": time.Now()}},
	)
}

// AppendNote pushes one note onto executionNotes as an atomic document-level
// operation; concurrent appends cannot lose each other.
func (r *ProjectRepository) AppendNote(ctx context.Context, id primitive.ObjectID, note model.ExecutionNote) (*model.ProjectManagement, error) {
	return r.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"executionNotes": note},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
}

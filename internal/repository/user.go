package repository

import (
	"context"
	"time"

	"planora/internal/model"
	"planora/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IUserRepository defines user persistence
type IUserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	SetBudget(ctx context.Context, id primitive.ObjectID, budget float64) error
	PushExpense(ctx context.Context, userID, expenseID primitive.ObjectID) error
	AddProject(ctx context.Context, userID, projectID primitive.ObjectID) error
	SetMember(ctx context.Context, id primitive.ObjectID, isMember bool) error
}

// UserRepository implements user persistence over Mongo
type UserRepository struct {
	*generic.BaseRepository[*model.User]
}

func NewUserRepository(db *mongo.Database) IUserRepository {
	return &UserRepository{generic.NewBaseRepository[*model.User](db.Collection("users"))}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Expenses == nil {
		user.Expenses = []primitive.ObjectID{}
	}
	if user.ProjectManagementIDs == nil {
		user.ProjectManagementIDs = []primitive.ObjectID{}
	}
	if err := r.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.FindOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.FindOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) SetBudget(ctx context.Context, id primitive.ObjectID, budget float64) error {
	return r.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"budget": budget, "updatedAt": time.Now()},
	})
}

// PushExpense appends an expense reference to the user's ordered expenses
// list as a single document-level operation.
func (r *UserRepository) PushExpense(ctx context.Context, userID, expenseID primitive.ObjectID) error {
	return r.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$push": bson.M{"expenses": expenseID},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
}

// AddProject registers a project reference on the user. $addToSet makes the
// add idempotent: linking the same project twice is a no-op.
func (r *UserRepository) AddProject(ctx context.Context, userID, projectID primitive.ObjectID) error {
	return r.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$addToSet": bson.M{"projectManagementIds": projectID},
		"$set":      bson.M{"updatedAt": time.Now()},
	})
}

func (r *UserRepository) SetMember(ctx context.Context, id primitive.ObjectID, isMember bool) error {
	return r.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"isMember": isMember, "updatedAt": time.Now()},
	})
}

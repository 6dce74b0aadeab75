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

// IExpenseRepository defines expense persistence
type IExpenseRepository interface {
	Create(ctx context.Context, expense *model.Expense) (*model.Expense, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Expense, error)
	UpdateOwned(ctx context.Context, id, userID primitive.ObjectID, patch *model.Expense) (*model.Expense, error)
	DeleteOwned(ctx context.Context, id, userID primitive.ObjectID) error
}

// ExpenseRepository implements expense persistence over Mongo
type ExpenseRepository struct {
	*generic.BaseRepository[*model.Expense]
}

func NewExpenseRepository(db *mongo.Database) IExpenseRepository {
	return &ExpenseRepository{generic.NewBaseRepository[*model.Expense](db.Collection("expenses"))}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *model.Expense) (*model.Expense, error) {
	now := time.Now()
	expense.CreatedAt = now
	expense.UpdatedAt = now
	if err := r.Insert(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (r *ExpenseRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Expense, error) {
	if len(ids) == 0 {
		return []*model.Expense{}, nil
	}
	return r.FindMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// UpdateOwned matches _id and userId in one filter. A hit on another user's
// expense reports the same not-found as true absence.
func (r *ExpenseRepository) UpdateOwned(ctx context.Context, id, userID primitive.ObjectID, patch *model.Expense) (*model.Expense, error) {
	return r.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": bson.M{
			"amount":    patch.Amount,
			"category":  patch.Category,
			"date":      patch.Date,
			"notes":     patch.Notes,
			"updatedAt": time.Now(),
		}},
	)
}

// DeleteOwned removes the expense only when both id and owner match.
func (r *ExpenseRepository) DeleteOwned(ctx context.Context, id, userID primitive.ObjectID) error {
	return r.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
}

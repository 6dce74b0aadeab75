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

// IMembershipRepository defines membership persistence
type IMembershipRepository interface {
	Create(ctx context.Context, membership *model.Membership) (*model.Membership, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) (*model.Membership, error)
}

// MembershipRepository implements membership persistence over Mongo
type MembershipRepository struct {
	*generic.BaseRepository[*model.Membership]
}

func NewMembershipRepository(db *mongo.Database) IMembershipRepository {
	return &MembershipRepository{generic.NewBaseRepository[*model.Membership](db.Collection("memberships"))}
}

func (r *MembershipRepository) Create(ctx context.Context, membership *model.Membership) (*model.Membership, error) {
	membership.CreatedAt = time.Now()
	if err := r.Insert(ctx, membership); err != nil {
		return nil, err
	}
	return membership, nil
}

func (r *MembershipRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*model.Membership, error) {
	return r.FindOne(ctx, bson.M{"userId": userID})
}

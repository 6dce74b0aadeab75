package repository

import (
	"context"
	"time"

	"planora/internal/model"
	"planora/pkg/generic"

	"go.mongodb.org/mongo-driver/mongo"
)

// IContactRepository defines contact-intake persistence
type IContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) (*model.Contact, error)
}

// ContactRepository implements contact persistence over Mongo
type ContactRepository struct {
	*generic.BaseRepository[*model.Contact]
}

func NewContactRepository(db *mongo.Database) IContactRepository {
	return &ContactRepository{generic.NewBaseRepository[*model.Contact](db.Collection("contacts"))}
}

func (r *ContactRepository) Create(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	contact.CreatedAt = time.Now()
	if err := r.Insert(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

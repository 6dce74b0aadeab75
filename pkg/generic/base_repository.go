package generic

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a document is absent or an ownership-scoped
// filter matched nothing. Callers cannot tell the two apart.
var ErrNotFound = errors.New("document not found")

// BaseRepository provides the common Mongo operations shared by the
// per-entity repositories. Ownership-scoped variants take a full filter so
// the id and the owner are matched in one atomic operation.
type BaseRepository[T Entity] struct {
	Collection *mongo.Collection
}

func NewBaseRepository[T Entity](collection *mongo.Collection) *BaseRepository[T] {
	return &BaseRepository[T]{Collection: collection}
}

// Insert assigns a fresh ObjectID and persists the entity.
func (r *BaseRepository[T]) Insert(ctx context.Context, entity T) error {
	entity.SetID(primitive.NewObjectID())
	_, err := r.Collection.InsertOne(ctx, entity)
	return err
}

// FindByID fetches a single document by its ObjectID.
func (r *BaseRepository[T]) FindByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	return r.FindOne(ctx, map[string]interface{}{"_id": id})
}

// FindOne fetches the first document matching filter.
func (r *BaseRepository[T]) FindOne(ctx context.Context, filter interface{}) (T, error) {
	var entity T
	err := r.Collection.FindOne(ctx, filter).Decode(&entity)
	if err == mongo.ErrNoDocuments {
		return entity, ErrNotFound
	}
	return entity, err
}

// FindMany fetches all documents matching filter. An empty result is a valid
// empty slice, not an error.
func (r *BaseRepository[T]) FindMany(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := r.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateOne applies update to the first document matching filter.
// Returns ErrNotFound when nothing matched.
func (r *BaseRepository[T]) UpdateOne(ctx context.Context, filter, update interface{}) error {
	res, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindOneAndUpdate applies update and returns the updated document.
// Returns ErrNotFound when nothing matched.
func (r *BaseRepository[T]) FindOneAndUpdate(ctx context.Context, filter, update interface{}) (T, error) {
	var entity T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&entity)
	if err == mongo.ErrNoDocuments {
		return entity, ErrNotFound
	}
	return entity, err
}

// DeleteOne removes the first document matching filter.
// Returns ErrNotFound when nothing matched.
func (r *BaseRepository[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	res, err := r.Collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

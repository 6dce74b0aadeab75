package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense is a single spending record owned by one user. Every mutation is
// scoped by both _id and userId in one filter, so another user's expense is
// indistinguishable from a missing one.
type Expense struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Amount    float64            `bson:"amount" json:"amount"`
	Category  string             `bson:"category" json:"category"`
	Date      string             `bson:"date" json:"date"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (e *Expense) GetID() primitive.ObjectID   { return e.ID }
func (e *Expense) SetID(id primitive.ObjectID) { e.ID = id }

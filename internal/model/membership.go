package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Membership is a member-signup record. UserID is set when the submitter was
// logged in; anonymous submissions keep it empty and cannot grant member-only
// access to any account.
type Membership struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Interests string             `bson:"interests,omitempty" json:"interests,omitempty"`
	Feedback  string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

func (m *Membership) GetID() primitive.ObjectID   { return m.ID }
func (m *Membership) SetID(id primitive.ObjectID) { m.ID = id }

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is a write-only contact-form record with no further lifecycle.
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Query     string             `bson:"query" json:"query"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

func (c *Contact) GetID() primitive.ObjectID   { return c.ID }
func (c *Contact) SetID(id primitive.ObjectID) { c.ID = id }

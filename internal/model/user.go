package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Defaults applied at signup.
const (
	DefaultDisplayPicture = "https://via.placeholder.com/150"
	DefaultBio            = "This is a short bio."
)

// User is the account document. Expenses and ProjectManagementIDs hold
// references to owned documents; both grow through atomic document-level
// updates, never read-modify-write.
type User struct {
	ID                   primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username             string               `bson:"username" json:"username"`
	Email                string               `bson:"email" json:"email"`
	PasswordHash         string               `bson:"password" json:"-"` // never expose hash in JSON
	IsMember             bool                 `bson:"isMember" json:"isMember"`
	DisplayPicture       string               `bson:"displayPicture" json:"displayPicture"`
	Bio                  string               `bson:"bio" json:"bio"`
	Phone                string               `bson:"phone" json:"phone"`
	Budget               float64              `bson:"budget" json:"budget"`
	Expenses             []primitive.ObjectID `bson:"expenses" json:"expenses"`
	ProjectManagementIDs []primitive.ObjectID `bson:"projectManagementIds" json:"projectManagementIds"`
	CreatedAt            time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time            `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) GetID() primitive.ObjectID   { return u.ID }
func (u *User) SetID(id primitive.ObjectID) { u.ID = id }

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account. Accounts are created once at
// registration and never updated or deleted; email and phone are unique
// across the collection (see database.EnsureUserIndexes).
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Gender       string             `bson:"gender" json:"gender"`
	Province     string             `bson:"province" json:"province"`
	District     string             `bson:"district" json:"district"`
	Sector       string             `bson:"sector" json:"sector"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

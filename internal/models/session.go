package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session is the server-side record behind a signed session token. The token
// itself carries the jti in TokenID; resolving requires the record to be
// unrevoked and unexpired, so logout and expiry invalidate the token even
// while its signature is still valid.
type Session struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TokenID   string             `bson:"tokenId" json:"tokenId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	ExpiresAt time.Time          `bson:"expiresAt" json:"expiresAt"`
	Revoked   bool               `bson:"revoked" json:"revoked"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

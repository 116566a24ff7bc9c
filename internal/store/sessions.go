package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"healthmate/internal/models"
)

// Sessions persists session records in the sessions collection.
type Sessions struct {
	col *mongo.Collection
}

func NewSessions(db *mongo.Database) *Sessions {
	return &Sessions{col: db.Collection("sessions")}
}

func (s *Sessions) Insert(ctx context.Context, session *models.Session) error {
	if _, err := s.col.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// FindActive returns the unrevoked record for the token id. Expiry is the
// caller's check; the TTL index only purges records eventually.
func (s *Sessions) FindActive(ctx context.Context, tokenID string) (*models.Session, error) {
	var session models.Session
	err := s.col.FindOne(ctx, bson.M{
		"tokenId": tokenID,
		"revoked": false,
	}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &session, nil
}

// Revoke marks the record revoked. Revoking an unknown or already revoked
// token reports ErrNotFound so callers can decide whether that matters.
func (s *Sessions) Revoke(ctx context.Context, tokenID string) error {
	res, err := s.col.UpdateOne(ctx, bson.M{
		"tokenId": tokenID,
		"revoked": false,
	}, bson.M{"$set": bson.M{"revoked": true}})
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Index names are matched against duplicate-key errors in store.Users, so the
// constants here and there must stay in sync.
const (
	UserEmailIndex = "email_unique"
	UserPhoneIndex = "phone_unique"
)

// EnsureUserIndexes creates the unique email and phone indexes. Creation is
// idempotent; these indexes are the authoritative guard against concurrent
// duplicate registrations.
func EnsureUserIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("users").Indexes()

	models := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName(UserEmailIndex).
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().
				SetName(UserPhoneIndex).
				SetUnique(true),
		},
	}

	log.Println("EnsureUserIndexes: creating email_unique and phone_unique indexes")
	_, err := indexes.CreateMany(ctx, models)
	if err != nil {
		log.Println("EnsureUserIndexes: index error:", err)
		return err
	}
	log.Println("EnsureUserIndexes: indexes created")
	return nil
}

// EnsureSessionIndexes creates the unique token id index plus a TTL index on
// expiresAt so expired session records are purged by the server itself.
func EnsureSessionIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("sessions").Indexes()

	models := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "tokenId", Value: 1}},
			Options: options.Index().
				SetName("tokenId_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "expiresAt", Value: 1}},
			Options: options.Index().
				SetName("expiresAt_ttl").
				SetExpireAfterSeconds(0),
		},
	}

	log.Println("EnsureSessionIndexes: creating tokenId_unique and expiresAt_ttl indexes")
	_, err := indexes.CreateMany(ctx, models)
	if err != nil {
		log.Println("EnsureSessionIndexes: index error:", err)
		return err
	}
	log.Println("EnsureSessionIndexes: indexes created")
	return nil
}

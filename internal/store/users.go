package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"healthmate/internal/database"
	"healthmate/internal/models"
)

var (
	// ErrDuplicateEmail and ErrDuplicatePhone are returned both by the
	// pre-insert existence checks and by the unique-index violation path,
	// so concurrent duplicate registrations surface the same way.
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicatePhone = errors.New("phone already registered")

	ErrNotFound = errors.New("not found")
)

// Users persists account records in the users collection.
type Users struct {
	col *mongo.Collection
}

func NewUsers(db *mongo.Database) *Users {
	return &Users{col: db.Collection("users")}
}

func (s *Users) EmailExists(ctx context.Context, email string) (bool, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, fmt.Errorf("email lookup: %w", err)
	}
	return count > 0, nil
}

func (s *Users) PhoneExists(ctx context.Context, phone string) (bool, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{"phone": phone})
	if err != nil {
		return false, fmt.Errorf("phone lookup: %w", err)
	}
	return count > 0, nil
}

// Create inserts the user as a single document, so a failed attempt leaves
// no partial row. Unique-index violations are translated into the duplicate
// sentinels; this is the race backstop behind the existence pre-checks.
func (s *Users) Create(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		if dup := translateDuplicateKey(err); dup != nil {
			return primitive.NilObjectID, dup
		}
		return primitive.NilObjectID, fmt.Errorf("insert user: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (s *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (s *Users) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// translateDuplicateKey maps a unique-index violation onto the matching
// duplicate sentinel, or returns nil when err is not a duplicate-key error.
// The driver only exposes the violated index through the error message, so
// the index names from database.EnsureUserIndexes are matched textually.
func translateDuplicateKey(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, database.UserEmailIndex):
		return ErrDuplicateEmail
	case strings.Contains(msg, database.UserPhoneIndex):
		return ErrDuplicatePhone
	}
	return nil
}

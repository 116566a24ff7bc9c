package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"healthmate/internal/models"
	"healthmate/internal/store"
)

// UserStore is the persistence the account service needs.
type UserStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Service implements registration and credential verification on top of the
// user store and the session manager.
type Service struct {
	users    UserStore
	sessions *SessionManager
}

func NewService(users UserStore, sessions *SessionManager) *Service {
	return &Service{users: users, sessions: sessions}
}

// RegisterInput carries the registration form fields. All fields are
// required; Email and Phone must be unique across accounts.
type RegisterInput struct {
	Name     string
	Gender   string
	Province string
	District string
	Sector   string
	Email    string
	Phone    string
	Password string
}

// Register validates uniqueness, hashes the password and persists the
// account. The email check runs before the phone check, so a request that
// duplicates both reports the email first. The unique indexes remain the
// authoritative guard: a concurrent duplicate slipping past the checks is
// caught at insert and surfaces as the same sentinel.
func (s *Service) Register(ctx context.Context, in RegisterInput) (primitive.ObjectID, error) {
	user := &models.User{
		Name:     strings.TrimSpace(in.Name),
		Gender:   strings.TrimSpace(in.Gender),
		Province: strings.TrimSpace(in.Province),
		District: strings.TrimSpace(in.District),
		Sector:   strings.TrimSpace(in.Sector),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:    strings.TrimSpace(in.Phone),
	}
	if user.Name == "" || user.Gender == "" || user.Province == "" ||
		user.District == "" || user.Sector == "" || user.Email == "" ||
		user.Phone == "" || strings.TrimSpace(in.Password) == "" {
		return primitive.NilObjectID, ErrMissingFields
	}

	exists, err := s.users.EmailExists(ctx, user.Email)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if exists {
		return primitive.NilObjectID, store.ErrDuplicateEmail
	}

	exists, err = s.users.PhoneExists(ctx, user.Phone)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if exists {
		return primitive.NilObjectID, store.ErrDuplicatePhone
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return primitive.NilObjectID, err
	}
	user.PasswordHash = hash
	user.CreatedAt = time.Now()

	return s.users.Create(ctx, user)
}

// Authenticate verifies the credentials and establishes a session. An
// unknown email and a wrong password return the identical error.
func (s *Service) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	return s.sessions.Create(ctx, user.ID)
}

// Logout destroys the session behind the token.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// User loads the account behind a resolved session identity.
func (s *Service) User(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"healthmate/internal/models"
	"healthmate/internal/store"
)

// SessionCookie is the browser cookie carrying the signed session token.
const SessionCookie = "session"

// SessionStore is the persistence the session manager needs.
type SessionStore interface {
	Insert(ctx context.Context, session *models.Session) error
	FindActive(ctx context.Context, tokenID string) (*models.Session, error)
	Revoke(ctx context.Context, tokenID string) error
}

// SessionManager issues and resolves session tokens. A token is an HS256 JWT
// carrying the user id and a jti; the jti points at a server-side record, so
// logout and expiry invalidate a token whose signature is otherwise valid.
type SessionManager struct {
	store  SessionStore
	secret []byte
	ttl    time.Duration
}

func NewSessionManager(store SessionStore, secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Create issues a signed token bound to the user and persists its record.
func (m *SessionManager) Create(ctx context.Context, userID primitive.ObjectID) (string, error) {
	now := time.Now()
	tokenID := uuid.NewString()

	claims := jwt.MapClaims{
		"sub": userID.Hex(),
		"jti": tokenID,
		"exp": now.Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	session := &models.Session{
		TokenID:   tokenID,
		UserID:    userID,
		ExpiresAt: now.Add(m.ttl),
		Revoked:   false,
		CreatedAt: now,
	}
	if err := m.store.Insert(ctx, session); err != nil {
		return "", err
	}

	return signed, nil
}

// Resolve returns the identity behind the token. Unknown, expired, revoked
// and tampered tokens all resolve to absent identity rather than an error;
// storage faults are logged and treated the same way.
func (m *SessionManager) Resolve(ctx context.Context, token string) (primitive.ObjectID, bool) {
	tokenID, userID, ok := m.parseToken(token)
	if !ok {
		return primitive.NilObjectID, false
	}

	session, err := m.store.FindActive(ctx, tokenID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Println("[SESSION] [ERROR] session lookup failed:", err)
		}
		return primitive.NilObjectID, false
	}

	if time.Now().After(session.ExpiresAt) {
		_ = m.store.Revoke(ctx, tokenID)
		return primitive.NilObjectID, false
	}
	if session.UserID != userID {
		return primitive.NilObjectID, false
	}

	return userID, true
}

// Destroy revokes the record behind the token. Invalid or already destroyed
// tokens are a no-op.
func (m *SessionManager) Destroy(ctx context.Context, token string) error {
	tokenID, _, ok := m.parseToken(token)
	if !ok {
		return nil
	}

	if err := m.store.Revoke(ctx, tokenID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// parseToken verifies the signature and expiry and extracts jti and sub.
func (m *SessionManager) parseToken(token string) (tokenID string, userID primitive.ObjectID, ok bool) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", primitive.NilObjectID, false
	}

	claims, claimsOK := parsed.Claims.(jwt.MapClaims)
	if !claimsOK {
		return "", primitive.NilObjectID, false
	}

	tokenID, _ = claims["jti"].(string)
	sub, _ := claims["sub"].(string)
	if tokenID == "" || sub == "" {
		return "", primitive.NilObjectID, false
	}

	userID, err = primitive.ObjectIDFromHex(sub)
	if err != nil {
		return "", primitive.NilObjectID, false
	}

	return tokenID, userID, true
}

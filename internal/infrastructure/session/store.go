package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/identity"
)

// ErrNotFound is returned when a session token is unknown or expired
var ErrNotFound = errors.New("session not found")

// Session is the server-side record behind a session cookie
type Session struct {
	Token     string            `json:"token"`
	UserID    uint              `json:"user_id"`
	Username  string            `json:"username"`
	Email     string            `json:"email"`
	UserType  identity.UserType `json:"user_type"`
	CreatedAt time.Time         `json:"created_at"`
}

// New creates a session for the given user with a fresh random token
func New(user *identity.User) *Session {
	return &Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		UserType:  user.UserType,
		CreatedAt: time.Now(),
	}
}

// Principal builds the request principal carried by the session
func (s *Session) Principal() identity.Principal {
	return identity.Principal{
		UserID:   s.UserID,
		Username: s.Username,
		Email:    s.Email,
		UserType: s.UserType,
	}
}

// Store persists sessions under their token for a bounded lifetime
type Store interface {
	// Save stores the session with the given time-to-live.
	Save(ctx context.Context, session *Session, ttl time.Duration) error
	// Get loads a session by token; ErrNotFound when absent or expired.
	Get(ctx context.Context, token string) (*Session, error)
	// Delete removes a session; deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}

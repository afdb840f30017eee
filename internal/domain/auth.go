// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// AuthUser is the shopper identity carried in the auth cookie. Email is the
// identifying field; a cookie payload without a non-empty email is invalid.
type AuthUser struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// User is a stored account, shopper or admin alike.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is an active admin session keyed by an opaque token.
type Session struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// UserRepository defines the port for user persistence operations.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, email, name, passwordHash string) (*User, error)
}

// SessionRepository defines the port for admin session persistence.
type SessionRepository interface {
	Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}

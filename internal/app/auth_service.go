// Package app holds the application services and business logic.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"github.com/webqianduansong/shn-jade-demo-sub001/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the provided email or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnauthorized indicates that no valid identity is attached to the request.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrEmailTaken indicates that an account already exists for the email.
	ErrEmailTaken = errors.New("email already registered")
)

// AuthService handles shopper authentication. The logged-in shopper is
// carried in a JSON cookie decoded by UserFromCookie; the service only
// touches storage on login and registration.
type AuthService struct {
	users domain.UserRepository
}

// NewAuthService creates a new shopper authentication service.
func NewAuthService(users domain.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login verifies the shopper's credentials and returns the identity to be
// serialized into the auth cookie.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthUser, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &domain.AuthUser{Email: user.Email, Name: user.Name}, nil
}

// Register creates a shopper account and returns the identity for the auth
// cookie.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*domain.AuthUser, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, email, name, string(hash))
	if err != nil {
		return nil, err
	}
	return &domain.AuthUser{Email: user.Email, Name: user.Name}, nil
}

// UserFromCookie decodes the auth cookie value into the shopper identity.
// It returns nil for an empty value, undecodable JSON, or a payload without
// a non-empty email. It never returns an error.
func UserFromCookie(raw string) *domain.AuthUser {
	if raw == "" {
		return nil
	}
	// Cookie values are URL-escaped on issuance; accept raw JSON too.
	if dec, err := url.QueryUnescape(raw); err == nil {
		raw = dec
	}
	var u domain.AuthUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil
	}
	if u.Email == "" {
		return nil
	}
	return &u
}

// RequireAuth decodes the auth cookie and fails with ErrUnauthorized when no
// valid shopper identity is present.
func RequireAuth(raw string) (*domain.AuthUser, error) {
	u := UserFromCookie(raw)
	if u == nil {
		return nil, ErrUnauthorized
	}
	return u, nil
}

// EncodeUserCookie serializes the shopper identity for the auth cookie.
func EncodeUserCookie(u domain.AuthUser) string {
	b, _ := json.Marshal(u)
	return url.QueryEscape(string(b))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

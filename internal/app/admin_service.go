package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/webqianduansong/shn-jade-demo-sub001/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrSessionNotFound indicates that the requested admin session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the admin session has expired.
	ErrSessionExpired = errors.New("session expired")
)

const adminSessionTTL = 7 * 24 * time.Hour

// AdminService handles admin authentication and session management. Admin
// accounts are ordinary users whose email appears on the configured
// allowlist; sessions are opaque random tokens stored server-side.
type AdminService struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
	allow    map[string]bool
}

// NewAdminService creates an admin service gated by the given email allowlist.
func NewAdminService(users domain.UserRepository, sessions domain.SessionRepository, adminEmails []string) *AdminService {
	allow := make(map[string]bool, len(adminEmails))
	for _, e := range adminEmails {
		if e = normalizeEmail(e); e != "" {
			allow[e] = true
		}
	}
	return &AdminService{users: users, sessions: sessions, allow: allow}
}

// IsAdmin reports whether the email is on the admin allowlist.
func (s *AdminService) IsAdmin(email string) bool {
	return s.allow[normalizeEmail(email)]
}

// Login authenticates an admin and creates a session, returning the opaque
// session token. Non-allowlisted emails fail the same way as bad passwords.
func (s *AdminService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if !s.allow[email] {
		return "", ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil || user == nil {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.createSession(ctx, user.ID)
}

// LoginWithEmail creates a session for an admin already authenticated
// upstream (SSO callback). The email must still pass the allowlist; the
// account is auto-provisioned on first SSO login.
func (s *AdminService) LoginWithEmail(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)
	if !s.allow[email] {
		return "", ErrUnauthorized
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		// SSO accounts carry no local password.
		user, err = s.users.Create(ctx, email, "", "")
		if err != nil {
			// Retry the lookup in case a concurrent callback created it.
			user, err = s.users.GetByEmail(ctx, email)
			if err != nil || user == nil {
				return "", err
			}
		}
	}

	return s.createSession(ctx, user.ID)
}

// Logout invalidates an admin session.
func (s *AdminService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ValidateSession resolves a session token to its admin user. The email is
// re-checked against the allowlist so revoking an admin takes effect on the
// next request.
func (s *AdminService) ValidateSession(ctx context.Context, token string) (*domain.User, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil || session == nil {
		return nil, ErrSessionNotFound
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrSessionExpired
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil || user == nil {
		return nil, ErrSessionNotFound
	}

	if !s.allow[normalizeEmail(user.Email)] {
		return nil, ErrUnauthorized
	}

	return user, nil
}

func (s *AdminService) createSession(ctx context.Context, userID int64) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	expiresAt := time.Now().Add(adminSessionTTL)
	if err := s.sessions.Create(ctx, userID, token, expiresAt); err != nil {
		return "", err
	}
	return token, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

package service

import (
	"strings"
	"sync"

	"aiact/internal/modules/auth/domain"
	apperrors "aiact/internal/platform/errors"
)

// AuthService holds the in-memory session and hands the current token to the
// gateway. The gateway and the usecase share this single source of truth.
type AuthService struct {
	mu      sync.RWMutex
	current domain.Session
}

func NewAuthService() *AuthService {
	return &AuthService{}
}

// Token implements the gateway's TokenSource. Empty means unauthenticated.
func (s *AuthService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

func (s *AuthService) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Restore replaces the in-memory session. A zero session clears it.
func (s *AuthService) Restore(session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = session
}

// ValidateCredentials enforces the local emptiness rule before the exchange.
func ValidateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return &apperrors.ValidationError{Message: "Email and password are required"}
	}
	return nil
}

package out

import (
	"context"
	"time"

	"aiact/internal/modules/auth/domain"
)

// SessionStore persists the token/identity pair durably. Save and Clear act
// on the pair atomically; Load returns apperrors.ErrNoSession when nothing is
// stored.
type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	Load(ctx context.Context) (domain.Session, error)
	Clear(ctx context.Context) error
}

// Authenticator is the server-side credential exchange.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (domain.TokenGrant, error)
	Register(ctx context.Context, email, password string) (domain.TokenGrant, error)
}

// TokenInspector extracts display metadata from an opaque token, best-effort.
type TokenInspector interface {
	Expiry(token string) (time.Time, bool)
}

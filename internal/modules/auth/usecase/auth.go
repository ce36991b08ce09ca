package usecase

import (
	"context"
	"fmt"
	"sync"

	"aiact/internal/modules/auth/domain"
	"aiact/internal/modules/auth/dto"
	authin "aiact/internal/modules/auth/port/in"
	authout "aiact/internal/modules/auth/port/out"
	"aiact/internal/modules/auth/service"
	apperrors "aiact/internal/platform/errors"
)

type Interactor struct {
	svc       *service.AuthService
	auth      authout.Authenticator
	store     authout.SessionStore
	inspector authout.TokenInspector
	once      sync.Once
}

func NewInteractor(svc *service.AuthService, auth authout.Authenticator, store authout.SessionStore, inspector authout.TokenInspector) authin.Usecase {
	return &Interactor{svc: svc, auth: auth, store: store, inspector: inspector}
}

// Initialize reads durable storage exactly once per process lifetime. A
// missing session is not an error; the client simply stays unauthenticated.
func (i *Interactor) Initialize(ctx context.Context) (dto.SessionOutput, error) {
	var initErr error
	i.once.Do(func() {
		session, err := i.store.Load(ctx)
		if err != nil {
			if err != apperrors.ErrNoSession {
				initErr = fmt.Errorf("restore session: %w", err)
			}
			return
		}
		i.svc.Restore(session)
	})
	if initErr != nil {
		return dto.SessionOutput{}, initErr
	}
	return i.sessionOutput(), nil
}

func (i *Interactor) Login(ctx context.Context, input dto.CredentialsInput) (dto.SessionOutput, error) {
	return i.exchange(ctx, input, i.auth.Login)
}

func (i *Interactor) Register(ctx context.Context, input dto.CredentialsInput) (dto.SessionOutput, error) {
	return i.exchange(ctx, input, i.auth.Register)
}

func (i *Interactor) exchange(ctx context.Context, input dto.CredentialsInput, do func(context.Context, string, string) (domain.TokenGrant, error)) (dto.SessionOutput, error) {
	if err := service.ValidateCredentials(input.Email, input.Password); err != nil {
		return dto.SessionOutput{}, err
	}
	grant, err := do(ctx, input.Email, input.Password)
	if err != nil {
		// Session state is unchanged on rejection.
		return dto.SessionOutput{}, err
	}
	session := domain.Session{Token: grant.AccessToken, Identity: input.Email}
	if err := i.store.Save(ctx, session); err != nil {
		return dto.SessionOutput{}, fmt.Errorf("persist session: %w", err)
	}
	i.svc.Restore(session)
	return i.sessionOutput(), nil
}

// Logout removes the durable pair and clears the in-memory identity, so no
// stale credential can be attached by the gateway afterwards.
func (i *Interactor) Logout(ctx context.Context) error {
	if err := i.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	i.svc.Restore(domain.Session{})
	return nil
}

func (i *Interactor) Status(_ context.Context) (dto.StatusOutput, error) {
	current := i.svc.Current()
	out := dto.StatusOutput{
		Identity:      current.Identity,
		Authenticated: current.IsAuthenticated(),
	}
	if current.Token != "" && i.inspector != nil {
		if expiry, ok := i.inspector.Expiry(current.Token); ok {
			e := expiry.UTC()
			out.TokenExpiry = &e
		}
	}
	return out, nil
}

func (i *Interactor) sessionOutput() dto.SessionOutput {
	current := i.svc.Current()
	return dto.SessionOutput{Identity: current.Identity, Authenticated: current.IsAuthenticated()}
}

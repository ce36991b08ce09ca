package in

import (
	"context"

	"aiact/internal/modules/auth/dto"
)

type Usecase interface {
	// Initialize restores the persisted session, at most once per process.
	Initialize(ctx context.Context) (dto.SessionOutput, error)
	Login(ctx context.Context, input dto.CredentialsInput) (dto.SessionOutput, error)
	Register(ctx context.Context, input dto.CredentialsInput) (dto.SessionOutput, error)
	Logout(ctx context.Context) error
	Status(ctx context.Context) (dto.StatusOutput, error)
}

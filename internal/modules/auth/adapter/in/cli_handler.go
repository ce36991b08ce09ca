package in

import (
	"context"

	"aiact/internal/modules/auth/dto"
	authin "aiact/internal/modules/auth/port/in"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Initialize(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Initialize(ctx)
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (dto.SessionOutput, error) {
	return h.usecase.Login(ctx, dto.CredentialsInput{Email: email, Password: password})
}

func (h CLIHandler) Register(ctx context.Context, email, password string) (dto.SessionOutput, error) {
	return h.usecase.Register(ctx, dto.CredentialsInput{Email: email, Password: password})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

package in

import (
	"context"

	"aiact/internal/modules/assess/dto"
)

type Usecase interface {
	Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error)
}

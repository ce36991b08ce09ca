package out

import (
	"context"

	"aiact/internal/modules/assess/domain"
)

// ComplianceChecker is the remote classification boundary. The algorithm
// behind it is an external collaborator; the client only consumes its result.
type ComplianceChecker interface {
	CheckCompliance(ctx context.Context, description string) (domain.CheckOutcome, error)
}

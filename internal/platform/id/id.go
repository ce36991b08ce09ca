package id

import "github.com/google/uuid"

// Generator creates opaque identifiers. The gateway stamps one on every
// outgoing request; tests substitute a fixed generator.
type Generator interface {
	New() string
}

type UUID struct{}

func (UUID) New() string {
	return uuid.NewString()
}

package utils

import "github.com/google/uuid"

// UUIDGenerator produces the trace IDs of incoming requests. IDs are
// time-ordered (v7) so that log lines sort by request start; a random (v4)
// ID is used when the v7 clock source fails.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

func (g *UUIDGenerator) Generate() string {
	if g.newV7 != nil {
		if id, err := g.newV7(); err == nil {
			return id.String()
		}
	}

	return uuid.NewString()
}

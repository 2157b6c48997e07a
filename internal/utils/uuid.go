package utils

import "github.com/google/uuid"

// UUIDGenerator hands out UUIDv7 strings. Version 7 ids start with a
// timestamp, so trace ids in access logs and photos uploaded in one batch
// keep their creation order when compared as text.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a UUIDv7, or a random v4 when the v7 source fails.
func (g *UUIDGenerator) Generate() string {
	if id, err := g.newV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

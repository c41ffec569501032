// Package uuid wraps ID generation so callers can substitute predictable IDs in tests.
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator produces unique identifiers
type Generator interface {
	New() string
}

// GoogleUUIDGenerator returns random v4 UUIDs
type GoogleUUIDGenerator struct{}

func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// ShortGenerator returns the first eight hex characters of a v4 UUID.
// Used where the ID must fit inside a Discord custom ID alongside other fields.
type ShortGenerator struct{}

func (g *ShortGenerator) New() string {
	return uuid.New().String()[:8]
}

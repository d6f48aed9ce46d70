package id

import (
	"strings"

	"github.com/google/uuid"
)

// Generator creates identities for teams and referees registered without one.
type Generator interface {
	NewID(prefix string) string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns "<prefix>-<uuid>" or a bare UUID when prefix is empty.
func (g *UUIDGenerator) NewID(prefix string) string {
	raw := uuid.NewString()
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return raw
	}
	return prefix + "-" + raw
}

package idgen

import (
	"github.com/google/uuid"

	"todoservice/internal/core/ports"
)

type UUID struct{}

func NewUUID() UUID {
	return UUID{}
}

func (UUID) NewID() string {
	return uuid.NewString()
}

// Fixed hands out the same id on every call.
type Fixed string

func (f Fixed) NewID() string {
	return string(f)
}

var (
	_ ports.IDGenerator = UUID{}
	_ ports.IDGenerator = Fixed("")
)

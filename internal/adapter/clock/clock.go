package clock

import (
	"time"

	"todoservice/internal/core/ports"
)

type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always reports the same instant.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}

var (
	_ ports.Clock = System{}
	_ ports.Clock = Fixed{}
)

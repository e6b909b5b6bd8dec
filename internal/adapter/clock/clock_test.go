package clock_test

import (
	"testing"
	"time"

	"todoservice/internal/adapter/clock"

	"github.com/stretchr/testify/require"
)

func TestSystem_Now_IsUTC(t *testing.T) {
	before := time.Now()
	now := clock.System{}.Now()

	require.Equal(t, time.UTC, now.Location())
	require.False(t, now.Before(before.Add(-time.Second)))
}

func TestFixed_Now_ReturnsFrozenInstant(t *testing.T) {
	at := time.Date(2020, 12, 2, 0, 0, 0, 0, time.UTC)
	c := clock.Fixed{At: at}

	require.Equal(t, at, c.Now())
	require.Equal(t, at, c.Now())
}

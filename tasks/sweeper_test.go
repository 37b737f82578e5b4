package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSweeper_DefaultInterval(t *testing.T) {
	t.Setenv("SWEEP_INTERVAL_MINUTES", "")

	s := NewSweeper()

	assert.Equal(t, 5*time.Minute, s.interval)
}

func TestNewSweeper_IntervalFromEnv(t *testing.T) {
	t.Setenv("SWEEP_INTERVAL_MINUTES", "10")

	s := NewSweeper()

	assert.Equal(t, 10*time.Minute, s.interval)
}

func TestNewSweeper_InvalidIntervalFallsBack(t *testing.T) {
	t.Setenv("SWEEP_INTERVAL_MINUTES", "zero")

	s := NewSweeper()

	assert.Equal(t, 5*time.Minute, s.interval)
}

package cavemat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	c := FixedClock(12.5)
	assert.Equal(t, float32(12.5), c.Elapsed())
	assert.Equal(t, c.Elapsed(), c.Elapsed())
}

func TestWallClockAdvancesFromZero(t *testing.T) {
	c := NewWallClock()
	assert.GreaterOrEqual(t, c.Elapsed(), float32(0))
}

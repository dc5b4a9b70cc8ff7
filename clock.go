package cavemat

import (
	"time"
)

// Clock supplies the elapsed-seconds uniform consumed by the time-varying
// materials. A render pass reads it once and threads the value through
// every evaluation, so all fragments of a pass see the same time.
type Clock interface {
	Elapsed() float32
}

// WallClock measures seconds since it was created.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Elapsed() float32 {
	return float32(time.Since(c.start).Seconds())
}

// FixedClock always reports the same elapsed time. Tests and offline
// renders use it to pin the time uniform.
type FixedClock float32

func (c FixedClock) Elapsed() float32 { return float32(c) }

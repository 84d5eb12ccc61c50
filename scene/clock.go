package scene

import (
	"math"
	"time"
)

// Clock is the animation time, one period per unit, wrapped into [0, 1).
type Clock struct {
	t     float64
	speed float64
}

// NewClock returns a clock advancing speed periods per second.
func NewClock(speed float64) *Clock {
	return &Clock{speed: speed}
}

func (c *Clock) Advance(dt time.Duration) float64 {
	c.t += dt.Seconds() * c.speed
	c.t -= math.Floor(c.t)
	return c.t
}

func (c *Clock) Time() float64 {
	return c.t
}

func (c *Clock) Set(t float64) {
	c.t = t - math.Floor(t)
}
